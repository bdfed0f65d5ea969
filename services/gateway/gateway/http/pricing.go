package gateway_http

import (
	"context"
	"time"

	httpclient "github.com/fiuber/gateway/internal/pkg/http"
	"github.com/fiuber/gateway/internal/pkg/models"
)

// PricingClient is an HTTP client for the pricing/admin service
type PricingClient struct {
	client *httpclient.Client
}

// NewPricingClient creates a new pricing service client
func NewPricingClient(baseURL string, timeout time.Duration) *PricingClient {
	return &PricingClient{
		client: httpclient.NewClient("pricing", baseURL, timeout),
	}
}

// GetFareConstants reads the fare tuning constants
func (c *PricingClient) GetFareConstants(ctx context.Context) (*models.FareConstants, error) {
	var constants models.FareConstants
	if err := c.client.Get(ctx, "/admin", &constants); err != nil {
		return nil, err
	}
	return &constants, nil
}

// UpdateFareConstants replaces the fare tuning constants
func (c *PricingClient) UpdateFareConstants(ctx context.Context, constants *models.FareConstants) (interface{}, error) {
	var result interface{}
	if err := c.client.Put(ctx, "/admin", constants, &result); err != nil {
		return nil, err
	}
	return result, nil
}
