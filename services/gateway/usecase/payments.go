package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// PaymentsUC fronts the payments service wallet endpoints
type PaymentsUC struct {
	auth       gateway.AuthUC
	paymentsGW gateway.PaymentsGW
}

// NewPaymentsUC creates a new payments usecase instance
func NewPaymentsUC(auth gateway.AuthUC, paymentsGW gateway.PaymentsGW) *PaymentsUC {
	return &PaymentsUC{
		auth:       auth,
		paymentsGW: paymentsGW,
	}
}

// GetBalance reads the caller's wallet balance
func (u *PaymentsUC) GetBalance(ctx context.Context, token string) (*models.Balance, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	balance, err := u.paymentsGW.GetBalance(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &models.Balance{UID: uid, Balance: balance}, nil
}

// CreateWallet provisions a wallet for the caller
func (u *PaymentsUC) CreateWallet(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.paymentsGW.CreateWallet(ctx, uid)
}

// Withdraw forwards the driver's withdrawal instruction
func (u *PaymentsUC) Withdraw(ctx context.Context, token string, req *models.WithdrawRequest) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	req.UID = uid
	return u.paymentsGW.Withdraw(ctx, req)
}

// GetDriverPayments lists the driver's received payments
func (u *PaymentsUC) GetDriverPayments(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.paymentsGW.GetDriverPayments(ctx, uid)
}
