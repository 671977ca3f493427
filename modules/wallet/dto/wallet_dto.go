package dto

type CreateTransactionRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Type   string  `json:"type" validate:"required,oneof=deposit withdrawal purchase refund"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}
