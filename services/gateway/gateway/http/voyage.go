package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/fiuber/gateway/internal/pkg/http"
	"github.com/fiuber/gateway/internal/pkg/models"
)

// noCalification is the voyage service sentinel for drivers without ratings
const noCalification = "No Calification"

// VoyageClient is an HTTP client for the voyage/matching service
type VoyageClient struct {
	client *httpclient.Client
}

// NewVoyageClient creates a new voyage service client
func NewVoyageClient(baseURL string, timeout time.Duration) *VoyageClient {
	return &VoyageClient{
		client: httpclient.NewClient("voyage", baseURL, timeout),
	}
}

// SearchDrivers returns the candidate driver id to quoted price mapping
func (c *VoyageClient) SearchDrivers(ctx context.Context, req *models.SearchVoyageRequest) (map[string]float64, error) {
	var candidates map[string]float64
	if err := c.client.Post(ctx, "/voyage/passenger/search", req, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// RequestVoyage locks in the passenger's driver choice and returns the offer
func (c *VoyageClient) RequestVoyage(ctx context.Context, driverID string, req *models.SearchVoyageRequest) (*models.VoyageOffer, error) {
	var offer models.VoyageOffer
	endpoint := fmt.Sprintf("/voyage/passenger/search/%s", driverID)
	if err := c.client.Post(ctx, endpoint, req, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// ConfirmVoyage finalizes (confirm=true) or releases (confirm=false) a
// reserved voyage
func (c *VoyageClient) ConfirmVoyage(ctx context.Context, voyageID, passengerID string, confirm bool) error {
	endpoint := fmt.Sprintf("/voyage/passenger/confirm/%s/%s/%t", voyageID, passengerID, confirm)
	return c.client.Post(ctx, endpoint, nil, nil)
}

// CancelSearch stops an active driver search
func (c *VoyageClient) CancelSearch(ctx context.Context, passengerID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/passenger/search/%s", passengerID)
	if err := c.client.Delete(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelVoyage cancels a previously confirmed voyage
func (c *VoyageClient) CancelVoyage(ctx context.Context, voyageID, passengerID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/%s/%s", voyageID, passengerID)
	if err := c.client.Delete(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetPassengerVIP toggles the passenger's vip subscription
func (c *VoyageClient) SetPassengerVIP(ctx context.Context, passengerID string, subscribed bool) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/passenger/vip/%s/%t", passengerID, subscribed)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetDriverSearching adds the driver to the searching pool
func (c *VoyageClient) SetDriverSearching(ctx context.Context, driverID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/searching/%s", driverID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetDriverOffline removes the driver from the searching pool
func (c *VoyageClient) SetDriverOffline(ctx context.Context, driverID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/offline/%s", driverID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SetDriverVIP toggles the driver's vip subscription
func (c *VoyageClient) SetDriverVIP(ctx context.Context, driverID string, subscribed bool) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/vip/%s/%t", driverID, subscribed)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateDriverLocation pushes the driver's live position
func (c *VoyageClient) UpdateDriverLocation(ctx context.Context, driverID string, location *models.Point) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/location/%s", driverID)
	if err := c.client.Post(ctx, endpoint, location, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDriverLocation reads the driver's last reported position
func (c *VoyageClient) GetDriverLocation(ctx context.Context, driverID string) (*models.Point, error) {
	var location models.Point
	endpoint := fmt.Sprintf("/voyage/driver/location/%s", driverID)
	if err := c.client.Get(ctx, endpoint, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// AnswerSolicitation relays the driver's accept or decline decision
func (c *VoyageClient) AnswerSolicitation(ctx context.Context, voyageID, driverID string, accept bool) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/%s/%t?driver_id=%s", voyageID, accept, driverID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StartVoyage marks the driver arrived at the initial point
func (c *VoyageClient) StartVoyage(ctx context.Context, voyageID, driverID string) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/driver/start/%s/%s", voyageID, driverID)
	if err := c.client.Post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FinishVoyage marks the trip ended, driver-initiated
func (c *VoyageClient) FinishVoyage(ctx context.Context, voyageID, driverID string) error {
	endpoint := fmt.Sprintf("/voyage/driver/end/%s/%s", voyageID, driverID)
	return c.client.Post(ctx, endpoint, nil, nil)
}

// GetVoyageInfo reads the voyage record for settlement and inspection
func (c *VoyageClient) GetVoyageInfo(ctx context.Context, voyageID, callerID string) (*models.VoyageInfo, error) {
	var info models.VoyageInfo
	endpoint := fmt.Sprintf("/voyage/info/%s/%s", voyageID, callerID)
	if err := c.client.Get(ctx, endpoint, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// calificationResponse carries either a numeric rating or the sentinel string
type calificationResponse struct {
	Calification interface{} `json:"calification"`
}

// GetRating reads a principal's rating. hasRating is false when the voyage
// service reports the no-calification sentinel.
func (c *VoyageClient) GetRating(ctx context.Context, id string, isDriver bool) (float64, bool, error) {
	var resp calificationResponse
	endpoint := fmt.Sprintf("/voyage/calification/%s/%t", id, isDriver)
	if err := c.client.Get(ctx, endpoint, &resp); err != nil {
		return 0, false, err
	}

	switch v := resp.Calification.(type) {
	case float64:
		return v, true, nil
	case string:
		if v == noCalification {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("unexpected calification value: %q", v)
	default:
		return 0, false, fmt.Errorf("unexpected calification value: %v", resp.Calification)
	}
}

// GetLastVoyage reads the caller's most recent voyage
func (c *VoyageClient) GetLastVoyage(ctx context.Context, id string, isDriver bool) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/last/%s/%t", id, isDriver)
	if err := c.client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitReview records the passenger's score for a finished voyage
func (c *VoyageClient) SubmitReview(ctx context.Context, voyageID, passengerID string, review *models.Review) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/review/%s/%s", voyageID, passengerID)
	if err := c.client.Post(ctx, endpoint, review, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitComplaint records a passenger complaint for a finished voyage
func (c *VoyageClient) SubmitComplaint(ctx context.Context, voyageID, passengerID string, complaint *models.Complaint) (interface{}, error) {
	var result interface{}
	endpoint := fmt.Sprintf("/voyage/passenger/complaint/%s/%s", voyageID, passengerID)
	if err := c.client.Post(ctx, endpoint, complaint, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetComplaints lists every recorded complaint, admin only at the gateway
func (c *VoyageClient) GetComplaints(ctx context.Context) (interface{}, error) {
	var result interface{}
	if err := c.client.Get(ctx, "/voyage/complaints", &result); err != nil {
		return nil, err
	}
	return result, nil
}
