package usecase

import (
	"context"

	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// VoyageUC orchestrates the voyage flows on behalf of passengers and drivers
type VoyageUC struct {
	auth       gateway.AuthUC
	usersGW    gateway.UsersGW
	voyageGW   gateway.VoyageGW
	paymentsGW gateway.PaymentsGW
	metrics    gateway.MetricsPublisher
}

// NewVoyageUC creates a new voyage usecase instance
func NewVoyageUC(
	auth gateway.AuthUC,
	usersGW gateway.UsersGW,
	voyageGW gateway.VoyageGW,
	paymentsGW gateway.PaymentsGW,
	metrics gateway.MetricsPublisher,
) *VoyageUC {
	return &VoyageUC{
		auth:       auth,
		usersGW:    usersGW,
		voyageGW:   voyageGW,
		paymentsGW: paymentsGW,
		metrics:    metrics,
	}
}

// Search runs the driver search and assembles an enriched candidate per
// result. Candidates whose profile cannot be read, or who are blocked, are
// dropped without failing the search. Picture, rating and live location are
// optional decorations; only the initial search call can abort the request.
func (u *VoyageUC) Search(ctx context.Context, token string, req *models.SearchVoyageRequest) (map[string]models.DriverCandidate, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	req.Passenger.ID = uid

	prices, err := u.voyageGW.SearchDrivers(ctx, req)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]models.DriverCandidate, len(prices))
	for driverID, price := range prices {
		if driverID == uid {
			continue
		}

		profile, err := u.usersGW.GetUser(ctx, driverID, uid)
		if err != nil {
			logger.Debug("dropping candidate without readable profile",
				logger.String("driver_id", driverID),
				logger.Err(err))
			continue
		}
		if profile.IsBlocked {
			continue
		}

		candidate := models.DriverCandidate{
			Name:     profile.Name,
			LastName: profile.LastName,
			Price:    price,
			Rating:   models.DefaultRating,
			Car:      profile.Car,
		}
		bestEffort("fetch profile picture", func() error {
			img, err := u.usersGW.GetProfilePicture(ctx, driverID)
			if err != nil {
				return err
			}
			if img != "" {
				candidate.ProfilePicture = &img
			}
			return nil
		})
		bestEffort("fetch driver rating", func() error {
			rating, hasRating, err := u.voyageGW.GetRating(ctx, driverID, true)
			if err != nil {
				return err
			}
			if hasRating {
				candidate.Rating = rating
			}
			return nil
		})
		bestEffort("fetch driver location", func() error {
			location, err := u.voyageGW.GetDriverLocation(ctx, driverID)
			if err != nil {
				return err
			}
			candidate.Location = location
			return nil
		})

		candidates[driverID] = candidate
	}
	return candidates, nil
}

// ConfirmDriver locks in the passenger's driver choice. The quoted price is
// checked against the passenger's balance before the voyage is confirmed;
// when the balance falls short the reservation is released and the caller
// gets an insufficient funds rejection.
func (u *VoyageUC) ConfirmDriver(ctx context.Context, token, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	req.Passenger.ID = uid

	offer, err := u.voyageGW.RequestVoyage(ctx, driverID, req)
	if err != nil {
		return nil, err
	}

	balance, err := u.paymentsGW.GetBalance(ctx, uid)
	if err != nil {
		return nil, err
	}
	if offer.FinalPrice > balance {
		bestEffort("release reserved voyage", func() error {
			return u.voyageGW.ConfirmVoyage(ctx, offer.VoyageID, uid, false)
		})
		return nil, models.ErrInsufficientFunds
	}

	if err := u.voyageGW.ConfirmVoyage(ctx, offer.VoyageID, uid, true); err != nil {
		return nil, err
	}
	return offer, nil
}

// CancelSearch stops the passenger's active driver search
func (u *VoyageUC) CancelSearch(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.CancelSearch(ctx, uid)
}

// CancelVoyage cancels a previously confirmed voyage
func (u *VoyageUC) CancelVoyage(ctx context.Context, token, voyageID string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.CancelVoyage(ctx, voyageID, uid)
}

// SetPassengerVIP toggles the passenger's vip subscription
func (u *VoyageUC) SetPassengerVIP(ctx context.Context, token string, subscribed bool) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SetPassengerVIP(ctx, uid, subscribed)
}

// SubmitReview records the passenger's score for a finished voyage
func (u *VoyageUC) SubmitReview(ctx context.Context, token, voyageID string, review *models.Review) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SubmitReview(ctx, voyageID, uid, review)
}

// SubmitComplaint records a passenger complaint about a finished voyage
func (u *VoyageUC) SubmitComplaint(ctx context.Context, token, voyageID string, complaint *models.Complaint) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.SubmitComplaint(ctx, voyageID, uid, complaint)
}

// LastPassengerVoyage reads the passenger's most recent voyage
func (u *VoyageUC) LastPassengerVoyage(ctx context.Context, token string) (interface{}, error) {
	uid, err := u.auth.ValidateRole(ctx, token, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.GetLastVoyage(ctx, uid, false)
}

// GetVoyageInfo reads a voyage record on behalf of either party. The voyage
// service enforces that the caller belongs to the voyage.
func (u *VoyageUC) GetVoyageInfo(ctx context.Context, token, voyageID string) (*models.VoyageInfo, error) {
	uid, err := u.auth.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	return u.voyageGW.GetVoyageInfo(ctx, voyageID, uid)
}
