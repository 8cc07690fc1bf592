package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves the single-operator form page. It is a thin presentation
// surface: all behavior lives behind the JSON endpoints it calls.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Workorder Processor</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        .container { max-width: 800px; margin-top: 50px; }
        .form-label { font-weight: 600; }
        .result-section { margin-top: 30px; }
        .extracted-data { background: #f8f9fa; padding: 15px; border-radius: 5px; }
        pre { white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <h1 class="text-center mb-4">Workorder Processor</h1>
        <p class="text-center text-muted mb-4">Convert customer workorders into your Printavo account</p>

        <form id="workorderForm">
            <div class="card">
                <div class="card-header"><h5 class="mb-0">Your Printavo Account Details</h5></div>
                <div class="card-body">
                    <div class="row">
                        <div class="col-md-6 mb-3">
                            <label for="printavoEmail" class="form-label">Printavo Email</label>
                            <input type="email" class="form-control" id="printavoEmail" required>
                        </div>
                        <div class="col-md-6 mb-3">
                            <label for="printavoToken" class="form-label">API Token</label>
                            <input type="password" class="form-control" id="printavoToken" required>
                            <div class="form-text">Get this from My Account &gt; Generate API Key</div>
                        </div>
                    </div>
                    <div class="row">
                        <div class="col-md-6 mb-3">
                            <label for="userId" class="form-label">Your User ID</label>
                            <input type="number" class="form-control" id="userId" required>
                        </div>
                        <div class="col-md-6 mb-3">
                            <label for="orderStatusId" class="form-label">Default Order Status ID</label>
                            <input type="number" class="form-control" id="orderStatusId" required>
                        </div>
                    </div>
                </div>
            </div>

            <div class="card mt-3">
                <div class="card-header"><h5 class="mb-0">Customer Workorder</h5></div>
                <div class="card-body">
                    <label for="workorderUrl" class="form-label">Workorder URL</label>
                    <input type="url" class="form-control" id="workorderUrl" required
                           placeholder="https://customer-shop.printavo.com/work_orders/abc123...">
                </div>
            </div>

            <div class="d-grid gap-2 mt-4">
                <button type="submit" class="btn btn-primary btn-lg" id="submitBtn">Process Workorder</button>
                <button type="button" class="btn btn-outline-secondary" id="testBtn">Test Scraper Only</button>
            </div>
        </form>

        <div id="resultsSection" class="result-section" style="display: none;"></div>
    </div>

    <script>
        const resultsSection = document.getElementById('resultsSection');

        function showResult(result) {
            let html = '';
            if (result.success) {
                html += '<div class="alert alert-success">' + (result.message || 'Success') + '</div>';
            } else {
                html += '<div class="alert alert-danger"><strong>' + (result.error || 'Error') + '</strong>' +
                        (result.details ? '<pre>' + result.details + '</pre>' : '') + '</div>';
            }
            html += '<div class="extracted-data"><h6>Extracted Data:</h6><pre>' +
                    JSON.stringify(result, null, 2) + '</pre></div>';
            resultsSection.innerHTML = html;
            resultsSection.style.display = 'block';
        }

        async function post(path, body) {
            const response = await fetch(path, {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify(body)
            });
            return response.json();
        }

        document.getElementById('workorderForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const submitBtn = document.getElementById('submitBtn');
            submitBtn.disabled = true;
            submitBtn.textContent = 'Processing...';
            try {
                showResult(await post('/api/process-workorder', {
                    printavoEmail: document.getElementById('printavoEmail').value,
                    printavoToken: document.getElementById('printavoToken').value,
                    userId: parseInt(document.getElementById('userId').value),
                    orderStatusId: parseInt(document.getElementById('orderStatusId').value),
                    workorderUrl: document.getElementById('workorderUrl').value
                }));
            } catch (err) {
                showResult({ success: false, error: 'Network error: ' + err.message });
            } finally {
                submitBtn.disabled = false;
                submitBtn.textContent = 'Process Workorder';
            }
        });

        document.getElementById('testBtn').addEventListener('click', async () => {
            const testBtn = document.getElementById('testBtn');
            testBtn.disabled = true;
            testBtn.textContent = 'Testing...';
            try {
                showResult(await post('/api/test-scraper', {
                    workorderUrl: document.getElementById('workorderUrl').value
                }));
            } catch (err) {
                showResult({ success: false, error: 'Network error: ' + err.message });
            } finally {
                testBtn.disabled = false;
                testBtn.textContent = 'Test Scraper Only';
            }
        });
    </script>
</body>
</html>
`
