package models

// VoyageStatus is the voyage lifecycle state, owned by the voyage service.
// The gateway never persists it, it only relays transitions and reads it back.
type VoyageStatus string

const (
	VoyageStatusWaiting    VoyageStatus = "WAITING"
	VoyageStatusStarting   VoyageStatus = "STARTING"
	VoyageStatusTravelling VoyageStatus = "TRAVELLING"
	VoyageStatusFinished   VoyageStatus = "FINISHED"
)

// Point is a geographic coordinate
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// PassengerState carries the searching passenger's status and position.
// ID is injected by the gateway from token validation.
type PassengerState struct {
	ID       string `json:"id,omitempty"`
	Status   string `json:"status" validate:"required"`
	Location Point  `json:"location"`
}

// SearchVoyageRequest is the passenger search criteria forwarded to the
// voyage service
type SearchVoyageRequest struct {
	Passenger PassengerState `json:"passenger" validate:"required"`
	Init      Point          `json:"init"`
	End       Point          `json:"end"`
	IsVIP     bool           `json:"is_vip"`
}

// DriverCandidate is the enriched profile assembled per search result.
// Rating falls back to DefaultRating when the voyage service has none.
type DriverCandidate struct {
	Name           string  `json:"name"`
	LastName       string  `json:"last_name"`
	Price          float64 `json:"price"`
	Rating         float64 `json:"rating"`
	Car            *Car    `json:"car,omitempty"`
	Location       *Point  `json:"location,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// DefaultRating is used when the voyage service reports no calification
const DefaultRating = 4.5

// VoyageOffer is the voyage service response when a passenger picks a driver
type VoyageOffer struct {
	VoyageID   string  `json:"voyage_id"`
	DriverID   string  `json:"driver_id,omitempty"`
	FinalPrice float64 `json:"final_price"`
}

// VoyageInfo is the terminal voyage record read back for settlement
type VoyageInfo struct {
	VoyageID    string       `json:"voyage_id"`
	PassengerID string       `json:"passenger_id"`
	DriverID    string       `json:"driver_id"`
	Price       float64      `json:"price"`
	Status      VoyageStatus `json:"status"`
	IsVIP       bool         `json:"is_vip"`
	StartTime   string       `json:"start_time"`
	EndTime     string       `json:"end_time"`
}

// Review is a passenger's score for a finished voyage
type Review struct {
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// ComplaintType enumerates the complaint categories the voyage service accepts
type ComplaintType string

const (
	ComplaintSteal          ComplaintType = "STEAL"
	ComplaintSexualAssault  ComplaintType = "SEXUAL"
	ComplaintUnsafeDriving  ComplaintType = "UNSAFE DRIVING"
	ComplaintUnsafeCar      ComplaintType = "UNSAFE CAR"
	ComplaintUnderInfluence ComplaintType = "UNDER INFLUENCE"
	ComplaintAggressive     ComplaintType = "AGGRESIVE"
)

// Complaint is a passenger complaint about a finished voyage
type Complaint struct {
	ComplaintType ComplaintType `json:"complaint_type" validate:"required,oneof=STEAL SEXUAL 'UNSAFE DRIVING' 'UNSAFE CAR' 'UNDER INFLUENCE' AGGRESIVE"`
	Description   string        `json:"description" validate:"required"`
}
