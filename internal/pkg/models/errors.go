package models

import (
	"errors"
	"fmt"
	"net/http"
)

// BackendError is a non-2xx response from a downstream service. The gateway
// surfaces the original status code and detail to its caller unmodified.
type BackendError struct {
	Service    string
	StatusCode int
	Detail     interface{}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s service returned %d: %v", e.Service, e.StatusCode, e.Detail)
}

// NewBackendError builds a BackendError, defaulting detail to the standard
// reason text when the backend body had no detail field.
func NewBackendError(service string, statusCode int, detail interface{}) *BackendError {
	if detail == nil {
		detail = http.StatusText(statusCode)
	}
	return &BackendError{Service: service, StatusCode: statusCode, Detail: detail}
}

// PermissionDeniedError is returned when a validated principal is blocked or
// lacks the required role. Mapped to HTTP 400 with the introspection echoed.
type PermissionDeniedError struct {
	IsBlocked bool
	Roles     []Role
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied (is_blocked=%v roles=%v)", e.IsBlocked, e.Roles)
}

// Detail is the error body surfaced to the caller
func (e *PermissionDeniedError) Detail() map[string]interface{} {
	roles := e.Roles
	if roles == nil {
		roles = []Role{}
	}
	return map[string]interface{}{
		"message":    "Error Permission Denied",
		"is_blocked": e.IsBlocked,
		"roles":      roles,
	}
}

// ErrInsufficientFunds rejects a voyage confirmation whose quoted price
// exceeds the passenger's balance. Mapped to HTTP 400.
var ErrInsufficientFunds = errors.New("Insufficient Funds")

// SettlementError reports a deposit failure after the voyage was already
// marked finished upstream. There is no compensating transaction.
type SettlementError struct {
	Cause error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement failed: %v", e.Cause)
}

func (e *SettlementError) Unwrap() error {
	return e.Cause
}
