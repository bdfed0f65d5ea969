package models

import "time"

// Metric event names published to the analytics queue
const (
	MetricEventLogin          = "Login"
	MetricEventSignUp         = "SignUp"
	MetricEventVoyageFinished = "VoyageFinished"
	MetricEventPayment        = "Payment"
)

// MetricEvent is a fire-and-forget analytics event. Event discriminates the
// payload; everything else is freeform for the consumer.
type MetricEvent struct {
	Event     string                 `json:"event"`
	Timestamp time.Time              `json:"timestamp"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// NewLoginMetric records a login attempt outcome
func NewLoginMetric(status bool, provider string) MetricEvent {
	return MetricEvent{
		Event:     MetricEventLogin,
		Timestamp: time.Now().UTC(),
		Fields: map[string]interface{}{
			"status":   status,
			"provider": provider,
		},
	}
}

// NewSignUpMetric records a signup attempt outcome
func NewSignUpMetric(status bool) MetricEvent {
	return MetricEvent{
		Event:     MetricEventSignUp,
		Timestamp: time.Now().UTC(),
		Fields: map[string]interface{}{
			"status": status,
		},
	}
}

// NewVoyageFinishedMetric records timing and vip data for a finished voyage
func NewVoyageFinishedMetric(info *VoyageInfo) MetricEvent {
	return MetricEvent{
		Event:     MetricEventVoyageFinished,
		Timestamp: time.Now().UTC(),
		Fields: map[string]interface{}{
			"voyage_id":  info.VoyageID,
			"price":      info.Price,
			"is_vip":     info.IsVIP,
			"start_time": info.StartTime,
			"end_time":   info.EndTime,
		},
	}
}

// NewPaymentMetric records the outcome of a settlement deposit
func NewPaymentMetric(info *VoyageInfo, success bool) MetricEvent {
	return MetricEvent{
		Event:     MetricEventPayment,
		Timestamp: time.Now().UTC(),
		Fields: map[string]interface{}{
			"voyage_id": info.VoyageID,
			"amount":    info.Price,
			"success":   success,
		},
	}
}
