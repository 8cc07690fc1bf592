package printavo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/printbridge/backend/internal/domain"
)

const userAgent = "PrintBridge/1.0"

// Client handles communication with the Printavo REST API. Credentials are
// passed per-call rather than held on the client because each request may
// target a different operator account.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Printavo API client. requestsPerSecond throttles
// outbound calls; Printavo rate-limits aggressively on shared tokens.
func NewClient(baseURL string, requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 5),
	}
}

// apiError is the error body shape Printavo returns on rejected requests.
type apiError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

// CreateCustomer creates a customer record and returns it with its new ID.
func (c *Client) CreateCustomer(ctx context.Context, creds domain.Credentials, payload *domain.CustomerPayload) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.post(ctx, "/customers", creds, payload, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateOrder creates an order record and returns it with its new ID.
func (c *Client) CreateOrder(ctx context.Context, creds domain.Credentials, payload *domain.OrderPayload) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/orders", creds, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// post executes one JSON POST with query-parameter credentials. Every
// failure is terminal: the caller decides what to do, and nothing retries.
func (c *Client) post(ctx context.Context, path string, creds domain.Credentials, payload, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	params := url.Values{}
	params.Set("email", creds.Email)
	params.Set("token", creds.Token)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPrintavoAPI, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.text() != "" {
			return fmt.Errorf("%w: status %d: %s", domain.ErrPrintavoAPI, resp.StatusCode, apiErr.text())
		}
		return fmt.Errorf("%w: status %d: %s", domain.ErrPrintavoAPI, resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
