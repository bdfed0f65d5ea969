package models

// Balance is the payments service response for GET /balance/{uid}
type Balance struct {
	UID     string  `json:"uid"`
	Balance float64 `json:"balance"`
}

// DepositRequest instructs the payments service to move the trip fare from
// the passenger's wallet to the driver's
type DepositRequest struct {
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	Amount     float64 `json:"amount"`
}

// WithdrawRequest is a driver's withdrawal instruction
type WithdrawRequest struct {
	UID     string  `json:"uid"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Address string  `json:"address" validate:"required"`
}

// WalletRequest asks the payments service to create a wallet for a user
type WalletRequest struct {
	UID string `json:"uid"`
}
