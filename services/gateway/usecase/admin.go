package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// AdminUC fronts the admin-gated surface: user administration, fare
// constants, complaints and the aggregated metrics reads. Every operation
// requires the Admin role.
type AdminUC struct {
	auth      gateway.AuthUC
	usersGW   gateway.UsersGW
	voyageGW  gateway.VoyageGW
	pricingGW gateway.PricingGW
	metricsGW gateway.MetricsGW
}

// NewAdminUC creates a new admin usecase instance
func NewAdminUC(
	auth gateway.AuthUC,
	usersGW gateway.UsersGW,
	voyageGW gateway.VoyageGW,
	pricingGW gateway.PricingGW,
	metricsGW gateway.MetricsGW,
) *AdminUC {
	return &AdminUC{
		auth:      auth,
		usersGW:   usersGW,
		voyageGW:  voyageGW,
		pricingGW: pricingGW,
		metricsGW: metricsGW,
	}
}

// RegisterAdmin grants the Admin role to another user
func (u *AdminUC) RegisterAdmin(ctx context.Context, token, userID string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return u.usersGW.RegisterAdmin(ctx, userID, uid)
}

// BlockUser blocks a user platform-wide
func (u *AdminUC) BlockUser(ctx context.Context, token, userID string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return u.usersGW.BlockUser(ctx, userID, uid)
}

// UnblockUser lifts a platform-wide block
func (u *AdminUC) UnblockUser(ctx context.Context, token, userID string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return u.usersGW.UnblockUser(ctx, userID, uid)
}

// GetAllUsers lists every stored user
func (u *AdminUC) GetAllUsers(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return u.usersGW.GetAllUsers(ctx, uid)
}

// GetFareConstants reads the fare tuning constants
func (u *AdminUC) GetFareConstants(ctx context.Context, token string) (*models.FareConstants, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.pricingGW.GetFareConstants(ctx)
}

// UpdateFareConstants replaces the fare tuning constants
func (u *AdminUC) UpdateFareConstants(ctx context.Context, token string, constants *models.FareConstants) (interface{}, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.pricingGW.UpdateFareConstants(ctx, constants)
}

// GetComplaints lists every recorded complaint
func (u *AdminUC) GetComplaints(ctx context.Context, token string) (interface{}, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.voyageGW.GetComplaints(ctx)
}

// GetVoyageMetrics reads the aggregated voyage metrics
func (u *AdminUC) GetVoyageMetrics(ctx context.Context, token string) (interface{}, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.metricsGW.GetVoyageMetrics(ctx)
}

// GetPaymentMetrics reads the aggregated payment metrics
func (u *AdminUC) GetPaymentMetrics(ctx context.Context, token string) (interface{}, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.metricsGW.GetPaymentMetrics(ctx)
}

// GetUserMetrics reads the aggregated user metrics
func (u *AdminUC) GetUserMetrics(ctx context.Context, token string) (interface{}, error) {
	if _, err := u.auth.ValidateRole(ctx, token, models.RoleAdmin); err != nil {
		return nil, err
	}
	return u.metricsGW.GetUserMetrics(ctx)
}
