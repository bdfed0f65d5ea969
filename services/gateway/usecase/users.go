package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// UserUC fronts the users service profile endpoints. The uid always comes
// from token validation, never from the request body.
type UserUC struct {
	auth    gateway.AuthUC
	usersGW gateway.UsersGW
}

// NewUserUC creates a new user usecase instance
func NewUserUC(auth gateway.AuthUC, usersGW gateway.UsersGW) *UserUC {
	return &UserUC{
		auth:    auth,
		usersGW: usersGW,
	}
}

// CreateUser stores the caller's profile. The profile picture travels on a
// separate endpoint upstream, so it is stripped from the create body and
// uploaded with a best-effort side call.
func (u *UserUC) CreateUser(ctx context.Context, token string, payload *models.UserPayload) (interface{}, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	created, err := u.usersGW.CreateUser(ctx, &models.CreateUserRequest{
		ID:        uid,
		Name:      payload.Name,
		LastName:  payload.LastName,
		Roles:     payload.Roles,
		Address:   payload.Address,
		Car:       payload.Car,
		IsBlocked: false,
	})
	if err != nil {
		return nil, err
	}

	if payload.ProfilePicture != nil {
		bestEffort("upload profile picture", func() error {
			return u.usersGW.UploadProfilePicture(ctx, uid, *payload.ProfilePicture)
		})
	}
	return created, nil
}

// GetUser fetches a profile and attaches its picture when one is available
func (u *UserUC) GetUser(ctx context.Context, token, userID string) (*models.UserProfile, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	profile, err := u.usersGW.GetUser(ctx, userID, uid)
	if err != nil {
		return nil, err
	}

	bestEffort("fetch profile picture", func() error {
		img, err := u.usersGW.GetProfilePicture(ctx, userID)
		if err != nil {
			return err
		}
		if img != "" {
			profile.ProfilePicture = &img
		}
		return nil
	})
	return profile, nil
}

// UpdateUser replaces a profile, with the same picture side call as create
func (u *UserUC) UpdateUser(ctx context.Context, token, userID string, payload *models.UserPayload) (interface{}, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	updated, err := u.usersGW.UpdateUser(ctx, userID, uid, &models.CreateUserRequest{
		ID:       userID,
		Name:     payload.Name,
		LastName: payload.LastName,
		Roles:    payload.Roles,
		Address:  payload.Address,
		Car:      payload.Car,
	})
	if err != nil {
		return nil, err
	}

	if payload.ProfilePicture != nil {
		bestEffort("upload profile picture", func() error {
			return u.usersGW.UploadProfilePicture(ctx, userID, *payload.ProfilePicture)
		})
	}
	return updated, nil
}

// DeleteUser removes a user scoped to the caller
func (u *UserUC) DeleteUser(ctx context.Context, token, userID string) (interface{}, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.usersGW.DeleteUser(ctx, userID, uid)
}
