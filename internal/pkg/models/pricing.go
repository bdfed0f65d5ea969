package models

// FareConstants are the pricing service fare tuning constants, readable and
// writable by admins through the gateway
type FareConstants struct {
	PriceMeter           float64 `json:"price_meter" validate:"min=0"`
	PriceMinute          float64 `json:"price_minute" validate:"min=0"`
	PriceVIP             float64 `json:"price_vip" validate:"min=0"`
	PlusNight            float64 `json:"plus_night" validate:"min=0"`
	SeniorityDriver      float64 `json:"seniority_driver"`
	DailyDriver          float64 `json:"daily_driver"`
	MonthlyDriver        float64 `json:"monthly_driver"`
	SeniorityPassenger   float64 `json:"seniority_passenger"`
	DailyPassenger       float64 `json:"daily_passenger"`
	MonthlyPassenger     float64 `json:"monthly_passenger"`
	MaxDiscountPassenger float64 `json:"max_discount_passenger"`
	MaxIncreaseDriver    float64 `json:"max_increase_driver"`
}
