package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/printbridge/backend/internal/domain"
	"github.com/printbridge/backend/internal/infrastructure/printavo"
)

// ImportRequest carries everything needed to process one workorder: the
// operator's Printavo credentials, the account user and status to attach the
// order to, and the workorder page URL.
type ImportRequest struct {
	Credentials   domain.Credentials
	UserID        int
	OrderStatusID int
	WorkorderURL  string
}

// ImportResult is the structured outcome of one processing invocation.
// Failures are reported here, never panicked past the request boundary.
type ImportResult struct {
	Success       bool                        `json:"success"`
	Customer      *domain.Customer            `json:"customer,omitempty"`
	Order         *domain.Order               `json:"order,omitempty"`
	WorkorderData *domain.NormalizedWorkorder `json:"workorderData,omitempty"`
	Message       string                      `json:"message,omitempty"`
	Error         string                      `json:"error,omitempty"`
	Details       string                      `json:"details,omitempty"`
}

// DiagnosticResult is the outcome of a test scrape: raw extraction plus a
// readiness analysis, with no records created.
type DiagnosticResult struct {
	Success         bool              `json:"success"`
	WorkorderData   *domain.Workorder `json:"workorderData,omitempty"`
	Analysis        *Analysis         `json:"analysis,omitempty"`
	Recommendations []Recommendation  `json:"recommendations,omitempty"`
	Error           string            `json:"error,omitempty"`
	Timestamp       time.Time         `json:"timestamp"`
}

// ImportService drives the scrape -> normalize -> create-customer ->
// create-order pipeline. Each invocation owns its own rendered page and
// result records; nothing is shared between requests.
type ImportService struct {
	renderer domain.PageRenderer
	client   domain.PrintavoClient
	log      *zap.SugaredLogger
}

// NewImportService creates an import service with its collaborators.
func NewImportService(renderer domain.PageRenderer, client domain.PrintavoClient, log *zap.SugaredLogger) *ImportService {
	return &ImportService{
		renderer: renderer,
		client:   client,
		log:      log,
	}
}

// IsWorkorderURL reports whether a URL looks like a shareable workorder page.
func IsWorkorderURL(url string) bool {
	return strings.Contains(url, "work_orders/")
}

// IsDiagnosticURL reports whether a URL is acceptable for a test scrape.
// Invoice pages share enough markup with workorders to be worth diagnosing.
func IsDiagnosticURL(url string) bool {
	return IsWorkorderURL(url) || strings.Contains(url, "invoice/")
}

// ScrapeWorkorder renders the page and produces a validated workorder.
// The browser resource is acquired and released inside the renderer before
// this returns, on success and failure alike.
func (s *ImportService) ScrapeWorkorder(ctx context.Context, url string) (*domain.NormalizedWorkorder, error) {
	if !IsWorkorderURL(url) {
		return nil, fmt.Errorf("%w: expected a work_orders/ URL, got %q", domain.ErrInvalidWorkorderURL, url)
	}

	doc, err := s.renderer.Render(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	raw := TransformPage(doc)
	s.log.Infow("workorder extracted",
		"url", url,
		"customer", raw.CustomerName,
		"lineItems", len(raw.LineItems),
	)

	return Normalize(raw)
}

// ProcessWorkorder runs the full import flow. The two API calls are
// sequential and dependent: the order needs the customer ID from the first
// call. Any failure is terminal for the invocation — there are no retries.
func (s *ImportService) ProcessWorkorder(ctx context.Context, req ImportRequest) *ImportResult {
	workorder, err := s.ScrapeWorkorder(ctx, req.WorkorderURL)
	if err != nil {
		s.log.Warnw("workorder scrape failed", "url", req.WorkorderURL, "err", err)
		return &ImportResult{
			Success: false,
			Error:   "Failed to scrape workorder",
			Details: err.Error(),
		}
	}

	customer, err := s.client.CreateCustomer(ctx, req.Credentials, printavo.ToCustomerPayload(workorder))
	if err != nil {
		s.log.Warnw("customer creation failed", "url", req.WorkorderURL, "err", err)
		return &ImportResult{
			Success:       false,
			Error:         "Failed to create customer",
			Details:       err.Error(),
			WorkorderData: workorder,
		}
	}
	s.log.Infow("customer created", "id", customer.ID, "firstName", customer.FirstName, "lastName", customer.LastName)

	orderPayload := printavo.ToOrderPayload(workorder, customer.ID, req.UserID, req.OrderStatusID)
	order, err := s.client.CreateOrder(ctx, req.Credentials, orderPayload)
	if err != nil {
		s.log.Warnw("order creation failed", "url", req.WorkorderURL, "customerId", customer.ID, "err", err)
		return &ImportResult{
			Success:       false,
			Error:         "Failed to create order",
			Details:       err.Error(),
			Customer:      customer,
			WorkorderData: workorder,
		}
	}
	s.log.Infow("order created", "id", order.ID, "customerId", customer.ID)

	return &ImportResult{
		Success:       true,
		Customer:      customer,
		Order:         order,
		WorkorderData: workorder,
		Message: fmt.Sprintf("Successfully processed workorder! Customer: %s %s, Order: #%d",
			customer.FirstName, customer.LastName, order.ID),
	}
}

// Diagnose runs extraction and readiness analysis for a URL without creating
// any records. Normalization failures are reflected in the analysis rather
// than surfaced as errors: the point is to show the operator what was found.
func (s *ImportService) Diagnose(ctx context.Context, url string) *DiagnosticResult {
	now := time.Now()

	if !IsDiagnosticURL(url) {
		return &DiagnosticResult{
			Success:   false,
			Error:     fmt.Sprintf("invalid workorder URL: expected a work_orders/ or invoice/ URL, got %q", url),
			Timestamp: now,
		}
	}

	doc, err := s.renderer.Render(ctx, url)
	if err != nil {
		s.log.Warnw("diagnostic render failed", "url", url, "err", err)
		return &DiagnosticResult{
			Success:   false,
			Error:     fmt.Sprintf("workorder page render failed: %v", err),
			Timestamp: now,
		}
	}

	raw := TransformPage(doc)
	analysis, recommendations := Analyze(raw)

	return &DiagnosticResult{
		Success:         true,
		WorkorderData:   raw,
		Analysis:        &analysis,
		Recommendations: recommendations,
		Timestamp:       now,
	}
}
