package models

import "errors"

// Role is a role a principal may hold. A principal can hold several at once.
type Role string

const (
	RolePassenger Role = "Passenger"
	RoleDriver    Role = "Driver"
	RoleAdmin     Role = "Admin"
)

// TokenIntrospection is the users service response for POST /validate
type TokenIntrospection struct {
	UID       string `json:"uid"`
	Roles     []Role `json:"roles"`
	IsBlocked bool   `json:"is_blocked"`
}

// HasRole reports whether the introspected principal holds the given role.
func (t *TokenIntrospection) HasRole(role Role) bool {
	for _, r := range t.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AuthCredentials is the login/signup payload forwarded to the users service
type AuthCredentials struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DeviceToken string `json:"device_token,omitempty"`
}

// Car describes a driver's vehicle
type Car struct {
	Model    string `json:"model" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Plaque   string `json:"plaque" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

// UserPayload is the tagged variant for user create/update requests.
// The variant is discriminated by roles: the Passenger variant requires
// Address, the Driver variant requires Car. A payload may satisfy both.
type UserPayload struct {
	Name           string  `json:"name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	Roles          []Role  `json:"roles" validate:"required,min=1,dive,oneof=Passenger Driver Admin"`
	Address        *string `json:"address,omitempty"`
	Car            *Car    `json:"car,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// CheckVariant enforces the role-dependent required fields: the Passenger
// variant needs an address, the Driver variant a car. A payload declaring
// both roles must satisfy both.
func (u *UserPayload) CheckVariant() error {
	if u.HasRole(RolePassenger) && u.Address == nil {
		return errors.New("address is required for the Passenger role")
	}
	if u.HasRole(RoleDriver) && u.Car == nil {
		return errors.New("car is required for the Driver role")
	}
	return nil
}

// HasRole reports whether the payload declares the given role.
func (u *UserPayload) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CreateUserRequest is the body forwarded to the users service when creating
// a user. The uid comes from token validation, never from the caller.
type CreateUserRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	LastName  string  `json:"last_name"`
	Roles     []Role  `json:"roles"`
	Address   *string `json:"address,omitempty"`
	Car       *Car    `json:"car,omitempty"`
	IsBlocked bool    `json:"is_blocked"`
}

// UserProfile is the users service representation of a stored user
type UserProfile struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LastName       string  `json:"last_name"`
	Roles          []Role  `json:"roles"`
	Address        *string `json:"address,omitempty"`
	Car            *Car    `json:"car,omitempty"`
	IsBlocked      bool    `json:"is_blocked"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ProfilePicture is the body of the users service picture endpoints
type ProfilePicture struct {
	Img string `json:"img"`
}
