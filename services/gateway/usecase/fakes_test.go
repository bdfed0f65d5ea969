package usecase

import (
	"context"
	"sync"

	"github.com/fiuber/gateway/internal/pkg/models"
)

// Hand-written fakes with per-method hooks. A nil hook means the call is
// unexpected and panics, which keeps the tests honest about what they stub.

type fakeUsersGW struct {
	ValidateFn             func(ctx context.Context, token string) (*models.TokenIntrospection, error)
	LoginFn                func(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)
	LoginGoogleFn          func(ctx context.Context, token string) (interface{}, error)
	SignUpFn               func(ctx context.Context, creds *models.AuthCredentials) (interface{}, error)
	CreateUserFn           func(ctx context.Context, user *models.CreateUserRequest) (interface{}, error)
	GetUserFn              func(ctx context.Context, userID, callerID string) (*models.UserProfile, error)
	UpdateUserFn           func(ctx context.Context, userID, callerID string, user *models.CreateUserRequest) (interface{}, error)
	DeleteUserFn           func(ctx context.Context, userID, callerID string) (interface{}, error)
	GetAllUsersFn          func(ctx context.Context, callerID string) (interface{}, error)
	UploadProfilePictureFn func(ctx context.Context, userID, img string) error
	GetProfilePictureFn    func(ctx context.Context, userID string) (string, error)
	RegisterAdminFn        func(ctx context.Context, userID, callerID string) (interface{}, error)
	BlockUserFn            func(ctx context.Context, userID, callerID string) (interface{}, error)
	UnblockUserFn          func(ctx context.Context, userID, callerID string) (interface{}, error)
}

func (f *fakeUsersGW) Validate(ctx context.Context, token string) (*models.TokenIntrospection, error) {
	return f.ValidateFn(ctx, token)
}

func (f *fakeUsersGW) Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	return f.LoginFn(ctx, creds)
}

func (f *fakeUsersGW) LoginGoogle(ctx context.Context, token string) (interface{}, error) {
	return f.LoginGoogleFn(ctx, token)
}

func (f *fakeUsersGW) SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	return f.SignUpFn(ctx, creds)
}

func (f *fakeUsersGW) CreateUser(ctx context.Context, user *models.CreateUserRequest) (interface{}, error) {
	return f.CreateUserFn(ctx, user)
}

func (f *fakeUsersGW) GetUser(ctx context.Context, userID, callerID string) (*models.UserProfile, error) {
	return f.GetUserFn(ctx, userID, callerID)
}

func (f *fakeUsersGW) UpdateUser(ctx context.Context, userID, callerID string, user *models.CreateUserRequest) (interface{}, error) {
	return f.UpdateUserFn(ctx, userID, callerID, user)
}

func (f *fakeUsersGW) DeleteUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	return f.DeleteUserFn(ctx, userID, callerID)
}

func (f *fakeUsersGW) GetAllUsers(ctx context.Context, callerID string) (interface{}, error) {
	return f.GetAllUsersFn(ctx, callerID)
}

func (f *fakeUsersGW) UploadProfilePicture(ctx context.Context, userID, img string) error {
	return f.UploadProfilePictureFn(ctx, userID, img)
}

func (f *fakeUsersGW) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	return f.GetProfilePictureFn(ctx, userID)
}

func (f *fakeUsersGW) RegisterAdmin(ctx context.Context, userID, callerID string) (interface{}, error) {
	return f.RegisterAdminFn(ctx, userID, callerID)
}

func (f *fakeUsersGW) BlockUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	return f.BlockUserFn(ctx, userID, callerID)
}

func (f *fakeUsersGW) UnblockUser(ctx context.Context, userID, callerID string) (interface{}, error) {
	return f.UnblockUserFn(ctx, userID, callerID)
}

type fakeVoyageGW struct {
	SearchDriversFn        func(ctx context.Context, req *models.SearchVoyageRequest) (map[string]float64, error)
	RequestVoyageFn        func(ctx context.Context, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error)
	ConfirmVoyageFn        func(ctx context.Context, voyageID, passengerID string, confirm bool) error
	CancelSearchFn         func(ctx context.Context, passengerID string) (interface{}, error)
	CancelVoyageFn         func(ctx context.Context, voyageID, passengerID string) (interface{}, error)
	SetPassengerVIPFn      func(ctx context.Context, passengerID string, subscribed bool) (interface{}, error)
	SetDriverSearchingFn   func(ctx context.Context, driverID string) (interface{}, error)
	SetDriverOfflineFn     func(ctx context.Context, driverID string) (interface{}, error)
	SetDriverVIPFn         func(ctx context.Context, driverID string, subscribed bool) (interface{}, error)
	UpdateDriverLocationFn func(ctx context.Context, driverID string, location *models.Point) (interface{}, error)
	GetDriverLocationFn    func(ctx context.Context, driverID string) (*models.Point, error)
	AnswerSolicitationFn   func(ctx context.Context, voyageID, driverID string, accept bool) (interface{}, error)
	StartVoyageFn          func(ctx context.Context, voyageID, driverID string) (interface{}, error)
	FinishVoyageFn         func(ctx context.Context, voyageID, driverID string) error
	GetVoyageInfoFn        func(ctx context.Context, voyageID, callerID string) (*models.VoyageInfo, error)
	GetRatingFn            func(ctx context.Context, id string, isDriver bool) (float64, bool, error)
	GetLastVoyageFn        func(ctx context.Context, id string, isDriver bool) (interface{}, error)
	SubmitReviewFn         func(ctx context.Context, voyageID, passengerID string, review *models.Review) (interface{}, error)
	SubmitComplaintFn      func(ctx context.Context, voyageID, passengerID string, complaint *models.Complaint) (interface{}, error)
	GetComplaintsFn        func(ctx context.Context) (interface{}, error)
}

func (f *fakeVoyageGW) SearchDrivers(ctx context.Context, req *models.SearchVoyageRequest) (map[string]float64, error) {
	return f.SearchDriversFn(ctx, req)
}

func (f *fakeVoyageGW) RequestVoyage(ctx context.Context, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error) {
	return f.RequestVoyageFn(ctx, driverID, req)
}

func (f *fakeVoyageGW) ConfirmVoyage(ctx context.Context, voyageID, passengerID string, confirm bool) error {
	return f.ConfirmVoyageFn(ctx, voyageID, passengerID, confirm)
}

func (f *fakeVoyageGW) CancelSearch(ctx context.Context, passengerID string) (interface{}, error) {
	return f.CancelSearchFn(ctx, passengerID)
}

func (f *fakeVoyageGW) CancelVoyage(ctx context.Context, voyageID, passengerID string) (interface{}, error) {
	return f.CancelVoyageFn(ctx, voyageID, passengerID)
}

func (f *fakeVoyageGW) SetPassengerVIP(ctx context.Context, passengerID string, subscribed bool) (interface{}, error) {
	return f.SetPassengerVIPFn(ctx, passengerID, subscribed)
}

func (f *fakeVoyageGW) SetDriverSearching(ctx context.Context, driverID string) (interface{}, error) {
	return f.SetDriverSearchingFn(ctx, driverID)
}

func (f *fakeVoyageGW) SetDriverOffline(ctx context.Context, driverID string) (interface{}, error) {
	return f.SetDriverOfflineFn(ctx, driverID)
}

func (f *fakeVoyageGW) SetDriverVIP(ctx context.Context, driverID string, subscribed bool) (interface{}, error) {
	return f.SetDriverVIPFn(ctx, driverID, subscribed)
}

func (f *fakeVoyageGW) UpdateDriverLocation(ctx context.Context, driverID string, location *models.Point) (interface{}, error) {
	return f.UpdateDriverLocationFn(ctx, driverID, location)
}

func (f *fakeVoyageGW) GetDriverLocation(ctx context.Context, driverID string) (*models.Point, error) {
	return f.GetDriverLocationFn(ctx, driverID)
}

func (f *fakeVoyageGW) AnswerSolicitation(ctx context.Context, voyageID, driverID string, accept bool) (interface{}, error) {
	return f.AnswerSolicitationFn(ctx, voyageID, driverID, accept)
}

func (f *fakeVoyageGW) StartVoyage(ctx context.Context, voyageID, driverID string) (interface{}, error) {
	return f.StartVoyageFn(ctx, voyageID, driverID)
}

func (f *fakeVoyageGW) FinishVoyage(ctx context.Context, voyageID, driverID string) error {
	return f.FinishVoyageFn(ctx, voyageID, driverID)
}

func (f *fakeVoyageGW) GetVoyageInfo(ctx context.Context, voyageID, callerID string) (*models.VoyageInfo, error) {
	return f.GetVoyageInfoFn(ctx, voyageID, callerID)
}

func (f *fakeVoyageGW) GetRating(ctx context.Context, id string, isDriver bool) (float64, bool, error) {
	return f.GetRatingFn(ctx, id, isDriver)
}

func (f *fakeVoyageGW) GetLastVoyage(ctx context.Context, id string, isDriver bool) (interface{}, error) {
	return f.GetLastVoyageFn(ctx, id, isDriver)
}

func (f *fakeVoyageGW) SubmitReview(ctx context.Context, voyageID, passengerID string, review *models.Review) (interface{}, error) {
	return f.SubmitReviewFn(ctx, voyageID, passengerID, review)
}

func (f *fakeVoyageGW) SubmitComplaint(ctx context.Context, voyageID, passengerID string, complaint *models.Complaint) (interface{}, error) {
	return f.SubmitComplaintFn(ctx, voyageID, passengerID, complaint)
}

func (f *fakeVoyageGW) GetComplaints(ctx context.Context) (interface{}, error) {
	return f.GetComplaintsFn(ctx)
}

type fakePaymentsGW struct {
	GetBalanceFn        func(ctx context.Context, uid string) (float64, error)
	DepositFn           func(ctx context.Context, req *models.DepositRequest) (interface{}, error)
	WithdrawFn          func(ctx context.Context, req *models.WithdrawRequest) (interface{}, error)
	CreateWalletFn      func(ctx context.Context, uid string) (interface{}, error)
	GetDriverPaymentsFn func(ctx context.Context, driverID string) (interface{}, error)
}

func (f *fakePaymentsGW) GetBalance(ctx context.Context, uid string) (float64, error) {
	return f.GetBalanceFn(ctx, uid)
}

func (f *fakePaymentsGW) Deposit(ctx context.Context, req *models.DepositRequest) (interface{}, error) {
	return f.DepositFn(ctx, req)
}

func (f *fakePaymentsGW) Withdraw(ctx context.Context, req *models.WithdrawRequest) (interface{}, error) {
	return f.WithdrawFn(ctx, req)
}

func (f *fakePaymentsGW) CreateWallet(ctx context.Context, uid string) (interface{}, error) {
	return f.CreateWalletFn(ctx, uid)
}

func (f *fakePaymentsGW) GetDriverPayments(ctx context.Context, driverID string) (interface{}, error) {
	return f.GetDriverPaymentsFn(ctx, driverID)
}

// recordingPublisher collects published events; Fail makes every publish
// error so tests can prove failures are swallowed.
type recordingPublisher struct {
	mu     sync.Mutex
	Events []models.MetricEvent
	Fail   error
}

func (r *recordingPublisher) Publish(event models.MetricEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	r.Events = append(r.Events, event)
	return nil
}

func (r *recordingPublisher) EventNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		names = append(names, e.Event)
	}
	return names
}

// fakeAuth is a stub for the token validator used by the non-auth usecases
type fakeAuth struct {
	UID  string
	Err  error
	Role models.Role
}

func (f *fakeAuth) Validate(ctx context.Context, token string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.UID, nil
}

func (f *fakeAuth) ValidateRole(ctx context.Context, token string, role models.Role) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	f.Role = role
	return f.UID, nil
}

func (f *fakeAuth) Login(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	panic("not implemented")
}

func (f *fakeAuth) LoginGoogle(ctx context.Context, token string) (interface{}, error) {
	panic("not implemented")
}

func (f *fakeAuth) SignUp(ctx context.Context, creds *models.AuthCredentials) (interface{}, error) {
	panic("not implemented")
}
