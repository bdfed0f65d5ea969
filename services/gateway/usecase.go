package gateway

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
)

// AuthUC validates bearer tokens against the users service and fronts the
// login/signup endpoints. Tokens are revalidated on every call, never cached.
type AuthUC interface {
	Validate(ctx context.Context, token string) (string, error)
	ValidateRole(ctx context.Context, token string, role models.Role) (string, error)
	Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)
	LoginGoogle(ctx context.Context, token string) (interface{}, error)
	SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)
}

// UserUC fronts the users service profile endpoints
type UserUC interface {
	CreateUser(ctx context.Context, token string, payload *models.UserPayload) (interface{}, error)
	GetUser(ctx context.Context, token, userID string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, token, userID string, payload *models.UserPayload) (interface{}, error)
	DeleteUser(ctx context.Context, token, userID string) (interface{}, error)
}

// AdminUC fronts the admin-gated surface: user administration, fare
// constants and aggregated metrics reads.
type AdminUC interface {
	RegisterAdmin(ctx context.Context, token, userID string) (interface{}, error)
	BlockUser(ctx context.Context, token, userID string) (interface{}, error)
	UnblockUser(ctx context.Context, token, userID string) (interface{}, error)
	GetAllUsers(ctx context.Context, token string) (interface{}, error)
	GetFareConstants(ctx context.Context, token string) (*models.FareConstants, error)
	UpdateFareConstants(ctx context.Context, token string, constants *models.FareConstants) (interface{}, error)
	GetComplaints(ctx context.Context, token string) (interface{}, error)
	GetVoyageMetrics(ctx context.Context, token string) (interface{}, error)
	GetPaymentMetrics(ctx context.Context, token string) (interface{}, error)
	GetUserMetrics(ctx context.Context, token string) (interface{}, error)
}

// VoyageUC orchestrates the voyage flows on behalf of passengers and drivers
type VoyageUC interface {
	// Passenger side
	Search(ctx context.Context, token string, req *models.SearchVoyageRequest) (map[string]models.DriverCandidate, error)
	ConfirmDriver(ctx context.Context, token, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error)
	CancelSearch(ctx context.Context, token string) (interface{}, error)
	CancelVoyage(ctx context.Context, token, voyageID string) (interface{}, error)
	SetPassengerVIP(ctx context.Context, token string, subscribed bool) (interface{}, error)
	SubmitReview(ctx context.Context, token, voyageID string, review *models.Review) (interface{}, error)
	SubmitComplaint(ctx context.Context, token, voyageID string, complaint *models.Complaint) (interface{}, error)
	LastPassengerVoyage(ctx context.Context, token string) (interface{}, error)

	// Driver side
	SetDriverSearching(ctx context.Context, token string) (interface{}, error)
	SetDriverOffline(ctx context.Context, token string) (interface{}, error)
	SetDriverVIP(ctx context.Context, token string, subscribed bool) (interface{}, error)
	UpdateDriverLocation(ctx context.Context, token string, location *models.Point) (interface{}, error)
	AnswerSolicitation(ctx context.Context, token, voyageID string, accept bool) (interface{}, error)
	StartVoyage(ctx context.Context, token, voyageID string) (interface{}, error)
	FinishVoyage(ctx context.Context, token, voyageID string) (map[string]string, error)
	LastDriverVoyage(ctx context.Context, token string) (interface{}, error)

	// Either party
	GetVoyageInfo(ctx context.Context, token, voyageID string) (*models.VoyageInfo, error)
}

// PaymentsUC fronts the payments service wallet endpoints
type PaymentsUC interface {
	GetBalance(ctx context.Context, token string) (*models.Balance, error)
	CreateWallet(ctx context.Context, token string) (interface{}, error)
	Withdraw(ctx context.Context, token string, req *models.WithdrawRequest) (interface{}, error)
	GetDriverPayments(ctx context.Context, token string) (interface{}, error)
}
