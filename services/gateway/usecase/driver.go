package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/models"
)

// SetDriverSearching adds the driver to the searching pool
func (u *VoyageUC) SetDriverSearching(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SetDriverSearching(ctx, uid)
}

// SetDriverOffline removes the driver from the searching pool
func (u *VoyageUC) SetDriverOffline(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SetDriverOffline(ctx, uid)
}

// SetDriverVIP toggles the driver's vip subscription
func (u *VoyageUC) SetDriverVIP(ctx context.Context, token string, subscribed bool) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SetDriverVIP(ctx, uid, subscribed)
}

// UpdateDriverLocation pushes the driver's live position
func (u *VoyageUC) UpdateDriverLocation(ctx context.Context, token string, location *models.Point) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.UpdateDriverLocation(ctx, uid, location)
}

// AnswerSolicitation relays the driver's accept or decline decision
func (u *VoyageUC) AnswerSolicitation(ctx context.Context, token, voyageID string, accept bool) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.AnswerSolicitation(ctx, voyageID, uid, accept)
}

// StartVoyage marks the driver arrived at the initial point
func (u *VoyageUC) StartVoyage(ctx context.Context, token, voyageID string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.StartVoyage(ctx, voyageID, uid)
}

// FinishVoyage marks the trip ended and settles it: the trip price moves
// from the passenger's wallet to the driver's. The voyage is already
// finished upstream by the time the deposit runs, so a deposit failure
// leaves the trip unpaid; there is no compensating transaction and the
// caller is told settlement failed.
func (u *VoyageUC) FinishVoyage(ctx context.Context, token, voyageID string) (map[string]string, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}

	if err := u.voyageGW.FinishVoyage(ctx, voyageID, uid); err != nil {
		return nil, err
	}

	info, err := u.voyageGW.GetVoyageInfo(ctx, voyageID, uid)
	if err != nil {
		return nil, &models.SettlementError{Cause: err}
	}
	publishMetric(u.metrics, models.NewVoyageFinishedMetric(info))

	_, err = u.paymentsGW.Deposit(ctx, &models.DepositRequest{
		SenderID:   info.PassengerID,
		ReceiverID: info.DriverID,
		Amount:     info.Price,
	})
	publishMetric(u.metrics, models.NewPaymentMetric(info, err == nil))
	if err != nil {
		return nil, &models.SettlementError{Cause: err}
	}

	return map[string]string{"result": "Ok"}, nil
}

// LastDriverVoyage reads the driver's most recent voyage
func (u *VoyageUC) LastDriverVoyage(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.GetLastVoyage(ctx, uid, true)
}
