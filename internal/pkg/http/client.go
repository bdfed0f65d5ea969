package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
)

// DefaultTimeout for backend requests
const DefaultTimeout = 10 * time.Second

// Client is a JSON-over-HTTP client for one backend service. Non-2xx
// responses become *models.BackendError carrying the backend's status code
// and its detail field, so callers can surface them unmodified.
type Client struct {
	service    string
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a client for the named backend service
func NewClient(service, baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		service: service,
		BaseURL: baseURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request and decodes the JSON response into result
func (c *Client) Get(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

// Post performs a POST request with a JSON body and decodes the response
func (c *Client) Post(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// Put performs a PUT request with a JSON body and decodes the response
func (c *Client) Put(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPut, endpoint, body, result)
}

// Delete performs a DELETE request and decodes the JSON response into result
func (c *Client) Delete(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodDelete, endpoint, nil, result)
}

// doJSON performs the request and maps the response. No retries: every
// backend error is surfaced immediately to the caller.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, result interface{}) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Propagate the inbound request ID for cross-service correlation
	if requestID := ctx.Value("request_id"); requestID != nil {
		req.Header.Set("X-Request-ID", fmt.Sprintf("%v", requestID))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("Backend request failed",
			logger.String("service", c.service),
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("%s service request failed: %w", c.service, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s service response: %w", c.service, err)
	}

	logger.Debug("Backend request completed",
		logger.String("service", c.service),
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	if !is2xx(resp.StatusCode) {
		return models.NewBackendError(c.service, resp.StatusCode, parseDetail(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode %s service response: %w", c.service, err)
		}
	}

	return nil
}

// is2xx reports whether the status code is a success
func is2xx(statusCode int) bool {
	return statusCode/100 == 2
}

// parseDetail extracts the backend's detail field from an error body.
// Returns nil when the body has none, so the caller falls back to the
// status reason text.
func parseDetail(body []byte) interface{} {
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return payload.Detail
}
