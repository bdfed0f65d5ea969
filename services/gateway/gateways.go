package gateway

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
)

// UsersGW is the client contract for the users service, which owns
// authentication, profiles and blocking.
type UsersGW interface {
	Validate(ctx context.Context, token string) (*models.TokenIntrospection, error)
	Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)
	LoginGoogle(ctx context.Context, token string) (interface{}, error)
	SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)

	CreateUser(ctx context.Context, user *models.CreateUserRequest) (interface{}, error)
	GetUser(ctx context.Context, userID, callerID string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, userID, callerID string, user *models.CreateUserRequest) (interface{}, error)
	DeleteUser(ctx context.Context, userID, callerID string) (interface{}, error)
	GetAllUsers(ctx context.Context, callerID string) (interface{}, error)

	UploadProfilePicture(ctx context.Context, userID, img string) error
	GetProfilePicture(ctx context.Context, userID string) (string, error)

	RegisterAdmin(ctx context.Context, userID, callerID string) (interface{}, error)
	BlockUser(ctx context.Context, userID, callerID string) (interface{}, error)
	UnblockUser(ctx context.Context, userID, callerID string) (interface{}, error)
}

// VoyageGW is the client contract for the voyage/matching service, which owns
// driver search, the voyage lifecycle and ratings.
type VoyageGW interface {
	SearchDrivers(ctx context.Context, req *models.SearchVoyageRequest) (map[string]float64, error)
	RequestVoyage(ctx context.Context, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error)
	ConfirmVoyage(ctx context.Context, voyageID, passengerID string, confirm bool) error
	CancelSearch(ctx context.Context, passengerID string) (interface{}, error)
	CancelVoyage(ctx context.Context, voyageID, passengerID string) (interface{}, error)
	SetPassengerVIP(ctx context.Context, passengerID string, subscribed bool) (interface{}, error)

	SetDriverSearching(ctx context.Context, driverID string) (interface{}, error)
	SetDriverOffline(ctx context.Context, driverID string) (interface{}, error)
	SetDriverVIP(ctx context.Context, driverID string, subscribed bool) (interface{}, error)
	UpdateDriverLocation(ctx context.Context, driverID string, location *models.Point) (interface{}, error)
	GetDriverLocation(ctx context.Context, driverID string) (*models.Point, error)
	AnswerSolicitation(ctx context.Context, voyageID, driverID string, accept bool) (interface{}, error)
	StartVoyage(ctx context.Context, voyageID, driverID string) (interface{}, error)
	FinishVoyage(ctx context.Context, voyageID, driverID string) error

	GetVoyageInfo(ctx context.Context, voyageID, callerID string) (*models.VoyageInfo, error)
	GetRating(ctx context.Context, id string, isDriver bool) (rating float64, hasRating bool, err error)
	GetLastVoyage(ctx context.Context, id string, isDriver bool) (interface{}, error)
	SubmitReview(ctx context.Context, voyageID, passengerID string, review *models.Review) (interface{}, error)
	SubmitComplaint(ctx context.Context, voyageID, passengerID string, complaint *models.Complaint) (interface{}, error)
	GetComplaints(ctx context.Context) (interface{}, error)
}

// PaymentsGW is the client contract for the payments service, which owns
// wallets, balances and settlement.
type PaymentsGW interface {
	GetBalance(ctx context.Context, uid string) (float64, error)
	Deposit(ctx context.Context, req *models.DepositRequest) (interface{}, error)
	Withdraw(ctx context.Context, req *models.WithdrawRequest) (interface{}, error)
	CreateWallet(ctx context.Context, uid string) (interface{}, error)
	GetDriverPayments(ctx context.Context, driverID string) (interface{}, error)
}

// PricingGW is the client contract for the pricing/admin service
type PricingGW interface {
	GetFareConstants(ctx context.Context) (*models.FareConstants, error)
	UpdateFareConstants(ctx context.Context, constants *models.FareConstants) (interface{}, error)
}

// MetricsGW is the client contract for the metrics consumer's query API
type MetricsGW interface {
	GetVoyageMetrics(ctx context.Context) (interface{}, error)
	GetPaymentMetrics(ctx context.Context) (interface{}, error)
	GetUserMetrics(ctx context.Context) (interface{}, error)
}

// MetricsPublisher publishes analytics events to the metrics queue.
// Publishing is fire-and-forget; callers swallow errors.
type MetricsPublisher interface {
	Publish(event models.MetricEvent) error
}
