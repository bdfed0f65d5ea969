package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/fiuber/gateway/internal/pkg/http"
	"github.com/fiuber/gateway/internal/pkg/models"
)

// UsersClient is an HTTP client for the users service
type UsersClient struct {
	client *httpclient.Client
}

// NewUsersClient creates a new users service client
func NewUsersClient(baseURL string, timeout time.Duration) *UsersClient {
	return &UsersClient{
		client: httpclient.NewClient("users", baseURL, timeout),
	}
}

// validateRequest is the body of the users service validate endpoint
type validateRequest struct {
	Token string `json:"token"`
}

// Validate exchanges a bearer token for the principal's identity
func (c *UsersClient) Validate(ctx context.Context, token string) (*models.TokenIntrospection, error) {
	var introspection models.TokenIntrospection
	if err := c.client.Post(ctx, "/validate", &validateRequest{Token: token}, &introspection); err != nil {
		return nil, err
	}
	return &introspection, nil
}

// Login forwards email/password credentials
func (c *UsersClient) Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	var session interface{}
	if err := c.client.Post(ctx, "/login", creds, &session); err != nil {
		return nil, err
	}
	return session, nil
}

// LoginGoogle forwards a federated login token
func (c *UsersClient) LoginGoogle(ctx context.Context, token string) (interface{}, error) {
	var session interface{}
	if err := c.client.Post(ctx, "/login/google", &validateRequest{Token: token}, &session); err != nil {
		return nil, err
	}
	return session, nil
}

// SignUp forwards a registration request
func (c *UsersClient) SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	var session interface{}
	if err := c.client.Post(ctx, "/signup", creds, &session); err != nil {
		return nil, err
	}
	return session, nil
}

// CreateUser stores a new user profile
func (c *UsersClient) CreateUser(ctx context.Context, user *models.CreateUserRequest) (interface{}, error) {
	var created interface{}
	if err := c.client.Post(ctx, "/users", user, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetUser fetches a user profile scoped to the caller
func (c *UsersClient) GetUser(ctx context.Context, userID, callerID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	endpoint := fmt.Sprintf("/users/%s/%s", userID, callerID)
	if err := c.client.Get(ctx, endpoint, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUser replaces a user profile scoped to the caller
func (c *UsersClient) UpdateUser(ctx context.Context, userID, callerID string, user *models.CreateUserRequest) (interface{}, error) {
	var updated interface{}
	endpoint := fmt.Sprintf("/users/%s/%s", userID, callerID)
	if err := c.client.Put(ctx, endpoint, user, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes a user scoped to the caller
func (c *UsersClient) DeleteUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	var deleted interface{}
	endpoint := fmt.Sprintf("/users/%s/%s", userID, callerID)
	if err := c.client.Delete(ctx, endpoint, &deleted); err != nil {
		return nil, err
	}
	return deleted, nil
}

// GetAllUsers lists every stored user, admin only upstream
func (c *UsersClient) GetAllUsers(ctx context.Context, callerID string) (interface{}, error) {
	var users interface{}
	endpoint := fmt.Sprintf("/users/all/%s", callerID)
	if err := c.client.Get(ctx, endpoint, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UploadProfilePicture stores a user's profile picture
func (c *UsersClient) UploadProfilePicture(ctx context.Context, userID, img string) error {
	endpoint := fmt.Sprintf("/users/%s/profile/picture", userID)
	return c.client.Post(ctx, endpoint, &models.ProfilePicture{Img: img}, nil)
}

// GetProfilePicture fetches a user's profile picture
func (c *UsersClient) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	var picture models.ProfilePicture
	endpoint := fmt.Sprintf("/users/%s/profile/picture", userID)
	if err := c.client.Get(ctx, endpoint, &picture); err != nil {
		return "", err
	}
	return picture.Img, nil
}

// RegisterAdmin grants the Admin role to a user
func (c *UsersClient) RegisterAdmin(ctx context.Context, userID, callerID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/users/admin/%s/%s", userID, callerID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// BlockUser blocks a user platform-wide
func (c *UsersClient) BlockUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/users/block/%s/%s", userID, callerID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UnblockUser lifts a platform-wide block
func (c *UsersClient) UnblockUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/users/unblock/%s/%s", userID, callerID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
