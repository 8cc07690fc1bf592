package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/printbridge/backend/internal/domain"
	"github.com/printbridge/backend/internal/usecase"
)

// WorkorderService is the slice of the import service the handlers need.
type WorkorderService interface {
	ProcessWorkorder(ctx context.Context, req usecase.ImportRequest) *usecase.ImportResult
	Diagnose(ctx context.Context, url string) *usecase.DiagnosticResult
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service WorkorderService
}

// NewHandler creates a new HTTP handler
func NewHandler(service WorkorderService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "printbridge-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// processRequest is the JSON body for POST /api/process-workorder.
type processRequest struct {
	PrintavoEmail string `json:"printavoEmail" binding:"required"`
	PrintavoToken string `json:"printavoToken" binding:"required"`
	UserID        int    `json:"userId" binding:"required"`
	OrderStatusID int    `json:"orderStatusId" binding:"required"`
	WorkorderURL  string `json:"workorderUrl" binding:"required"`
}

// ProcessWorkorder runs the full scrape-and-import flow for one workorder.
// The URL shape is rejected here, before any rendering attempt.
func (h *Handler) ProcessWorkorder(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields",
		})
		return
	}

	if !usecase.IsWorkorderURL(req.WorkorderURL) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid workorder URL format. Expected: [subdomain].printavo.com/work_orders/[hash]",
		})
		return
	}

	result := h.service.ProcessWorkorder(c.Request.Context(), usecase.ImportRequest{
		Credentials: domain.Credentials{
			Email: req.PrintavoEmail,
			Token: req.PrintavoToken,
		},
		UserID:        req.UserID,
		OrderStatusID: req.OrderStatusID,
		WorkorderURL:  req.WorkorderURL,
	})
	c.JSON(http.StatusOK, result)
}

// testRequest is the JSON body for POST /api/test-scraper.
type testRequest struct {
	WorkorderURL string `json:"workorderUrl" binding:"required"`
}

// TestScraper runs extraction and readiness analysis without creating any
// Printavo records.
func (h *Handler) TestScraper(c *gin.Context) {
	var req testRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required fields",
		})
		return
	}

	if !usecase.IsDiagnosticURL(req.WorkorderURL) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid workorder URL format. Expected a work_orders/ or invoice/ URL",
		})
		return
	}

	result := h.service.Diagnose(c.Request.Context(), req.WorkorderURL)
	c.JSON(http.StatusOK, result)
}
