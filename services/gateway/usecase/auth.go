package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// AuthUC validates bearer tokens against the users service and fronts the
// login/signup endpoints
type AuthUC struct {
	usersGW gateway.UsersGW
	metrics gateway.MetricsPublisher
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(usersGW gateway.UsersGW, metrics gateway.MetricsPublisher) *AuthUC {
	return &AuthUC{
		usersGW: usersGW,
		metrics: metrics,
	}
}

// Validate exchanges a token for the principal's uid. Every call hits the
// users service; introspections are never cached.
func (u *AuthUC) Validate(ctx context.Context, token string) (string, error) {
	introspection, err := u.usersGW.Validate(ctx, token)
	if err != nil {
		return "", err
	}
	if introspection.IsBlocked {
		return "", &models.PermissionDeniedError{
			IsBlocked: true,
			Roles:     introspection.Roles,
		}
	}
	return introspection.UID, nil
}

// ValidateRole validates the token and additionally requires the given role
func (u *AuthUC) ValidateRole(ctx context.Context, token string, role models.Role) (string, error) {
	introspection, err := u.usersGW.Validate(ctx, token)
	if err != nil {
		return "", err
	}
	if introspection.IsBlocked || !introspection.HasRole(role) {
		return "", &models.PermissionDeniedError{
			IsBlocked: introspection.IsBlocked,
			Roles:     introspection.Roles,
		}
	}
	return introspection.UID, nil
}

// Login forwards email/password credentials and records the attempt outcome
func (u *AuthUC) Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	session, err := u.usersGW.Login(ctx, creds)
	publishMetric(u.metrics, models.NewLoginMetric(err == nil, "email"))
	if err != nil {
		return nil, err
	}
	return session, nil
}

// LoginGoogle forwards a federated login token and records the attempt outcome
func (u *AuthUC) LoginGoogle(ctx context.Context, token string) (interface{}, error) {
	session, err := u.usersGW.LoginGoogle(ctx, token)
	publishMetric(u.metrics, models.NewLoginMetric(err == nil, "google"))
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SignUp forwards a registration request and records the attempt outcome
func (u *AuthUC) SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	session, err := u.usersGW.SignUp(ctx, creds)
	publishMetric(u.metrics, models.NewSignUpMetric(err == nil))
	if err != nil {
		return nil, err
	}
	return session, nil
}
