package gateway_http

import (
	"context"
	"time"

	httpclient "github.com/fiuber/gateway/internal/pkg/http"
)

// MetricsClient is an HTTP client for the metrics consumer's query API
type MetricsClient struct {
	client *httpclient.Client
}

// NewMetricsClient creates a new metrics service client
func NewMetricsClient(baseURL string, timeout time.Duration) *MetricsClient {
	return &MetricsClient{
		client: httpclient.NewClient("metrics", baseURL, timeout),
	}
}

// GetVoyageMetrics reads the aggregated voyage metrics
func (c *MetricsClient) GetVoyageMetrics(ctx context.Context) (interface{}, error) {
	var result interface{}
	if err := c.client.Get(ctx, "/metrics/voyages", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPaymentMetrics reads the aggregated payment metrics
func (c *MetricsClient) GetPaymentMetrics(ctx context.Context) (interface{}, error) {
	var result interface{}
	if err := c.client.Get(ctx, "/metrics/payments", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserMetrics reads the aggregated user metrics
func (c *MetricsClient) GetUserMetrics(ctx context.Context) (interface{}, error) {
	var result interface{}
	if err := c.client.Get(ctx, "/metrics/users", &result); err != nil {
		return nil, err
	}
	return result, nil
}
