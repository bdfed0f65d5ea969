package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/fiuber/gateway/internal/pkg/http"
	"github.com/fiuber/gateway/internal/pkg/models"
)

// PaymentsClient is an HTTP client for the payments service
type PaymentsClient struct {
	client *httpclient.Client
}

// NewPaymentsClient creates a new payments service client
func NewPaymentsClient(baseURL string, timeout time.Duration) *PaymentsClient {
	return &PaymentsClient{
		client: httpclient.NewClient("payments", baseURL, timeout),
	}
}

// GetBalance reads a user's wallet balance
func (c *PaymentsClient) GetBalance(ctx context.Context, uid string) (float64, error) {
	var balance models.Balance
	endpoint := fmt.Sprintf("/balance/%s", uid)
	if err := c.client.Get(ctx, endpoint, &balance); err != nil {
		return 0, err
	}
	return balance.Balance, nil
}

// Deposit transfers the trip fare from passenger to driver
func (c *PaymentsClient) Deposit(ctx context.Context, req *models.DepositRequest) (interface{}, error) {
	var result interface{}
	if err := c.client.Post(ctx, "/deposit", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Withdraw forwards a driver's withdrawal instruction
func (c *PaymentsClient) Withdraw(ctx context.Context, req *models.WithdrawRequest) (interface{}, error) {
	var result interface{}
	if err := c.client.Post(ctx, "/withdraw", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateWallet provisions a wallet for a user
func (c *PaymentsClient) CreateWallet(ctx context.Context, uid string) (interface{}, error) {
	var result interface{}
	if err := c.client.Post(ctx, "/wallet", &models.WalletRequest{UID: uid}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDriverPayments lists a driver's received payments
func (c *PaymentsClient) GetDriverPayments(ctx context.Context, driverID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/payments/%s", driverID)
	if err := c.client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}
