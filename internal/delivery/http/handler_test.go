package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printbridge/backend/config"
	"github.com/printbridge/backend/internal/domain"
	"github.com/printbridge/backend/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubService records calls and replies with canned results.
type stubService struct {
	processCalls   []usecase.ImportRequest
	diagnoseCalls  []string
	processResult  *usecase.ImportResult
	diagnoseResult *usecase.DiagnosticResult
}

func (s *stubService) ProcessWorkorder(_ context.Context, req usecase.ImportRequest) *usecase.ImportResult {
	s.processCalls = append(s.processCalls, req)
	return s.processResult
}

func (s *stubService) Diagnose(_ context.Context, url string) *usecase.DiagnosticResult {
	s.diagnoseCalls = append(s.diagnoseCalls, url)
	return s.diagnoseResult
}

func newTestRouter(service *stubService) *gin.Engine {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"*"}
	return SetupRouter(cfg, NewHandler(service))
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "printbridge-backend", body["service"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestIndexServesForm(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "process-workorder")
}

func TestProcessWorkorder(t *testing.T) {
	validBody := map[string]interface{}{
		"printavoEmail": "shop@example.com",
		"printavoToken": "tok-123",
		"userId":        7,
		"orderStatusId": 3,
		"workorderUrl":  "https://shop.printavo.com/work_orders/abc123",
	}

	t.Run("success passes request through to the service", func(t *testing.T) {
		service := &stubService{
			processResult: &usecase.ImportResult{
				Success: true,
				Message: "Workorder successfully imported to Printavo",
			},
		}
		router := newTestRouter(service)

		w := postJSON(router, "/api/process-workorder", validBody)
		require.Equal(t, http.StatusOK, w.Code)

		var result usecase.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.True(t, result.Success)

		require.Len(t, service.processCalls, 1)
		call := service.processCalls[0]
		assert.Equal(t, domain.Credentials{Email: "shop@example.com", Token: "tok-123"}, call.Credentials)
		assert.Equal(t, 7, call.UserID)
		assert.Equal(t, 3, call.OrderStatusID)
		assert.Equal(t, "https://shop.printavo.com/work_orders/abc123", call.WorkorderURL)
	})

	t.Run("missing field is a 400 before the service is touched", func(t *testing.T) {
		for _, field := range []string{"printavoEmail", "printavoToken", "userId", "orderStatusId", "workorderUrl"} {
			body := map[string]interface{}{}
			for k, v := range validBody {
				body[k] = v
			}
			delete(body, field)

			service := &stubService{}
			router := newTestRouter(service)

			w := postJSON(router, "/api/process-workorder", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
			assert.Contains(t, w.Body.String(), "Missing required fields")
			assert.Empty(t, service.processCalls)
		}
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		service := &stubService{}
		router := newTestRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/api/process-workorder", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.processCalls)
	})

	t.Run("non-workorder URL is rejected without a service call", func(t *testing.T) {
		body := map[string]interface{}{}
		for k, v := range validBody {
			body[k] = v
		}
		body["workorderUrl"] = "https://example.com/orders/123"

		service := &stubService{}
		router := newTestRouter(service)

		w := postJSON(router, "/api/process-workorder", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid workorder URL format")
		assert.Empty(t, service.processCalls)
	})

	t.Run("service failure result still returns 200 with details", func(t *testing.T) {
		service := &stubService{
			processResult: &usecase.ImportResult{
				Success: false,
				Error:   "Failed to scrape workorder",
				Details: "render failed: browser crashed",
			},
		}
		router := newTestRouter(service)

		w := postJSON(router, "/api/process-workorder", validBody)
		require.Equal(t, http.StatusOK, w.Code)

		var result usecase.ImportResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Equal(t, "Failed to scrape workorder", result.Error)
	})
}

func TestTestScraper(t *testing.T) {
	t.Run("runs diagnosis for workorder and invoice URLs", func(t *testing.T) {
		for _, url := range []string{
			"https://shop.printavo.com/work_orders/abc123",
			"https://shop.printavo.com/invoice/def456",
		} {
			service := &stubService{
				diagnoseResult: &usecase.DiagnosticResult{Success: true},
			}
			router := newTestRouter(service)

			w := postJSON(router, "/api/test-scraper", map[string]string{"workorderUrl": url})
			require.Equal(t, http.StatusOK, w.Code, url)
			require.Len(t, service.diagnoseCalls, 1)
			assert.Equal(t, url, service.diagnoseCalls[0])
		}
	})

	t.Run("missing URL is a 400", func(t *testing.T) {
		service := &stubService{}
		router := newTestRouter(service)

		w := postJSON(router, "/api/test-scraper", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.diagnoseCalls)
	})

	t.Run("unrecognized URL is a 400", func(t *testing.T) {
		service := &stubService{}
		router := newTestRouter(service)

		w := postJSON(router, "/api/test-scraper", map[string]string{"workorderUrl": "https://example.com/page"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.diagnoseCalls)
	})
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/process-workorder", nil)
	req.Header.Set("Origin", "https://operator.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://operator.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
