package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypePurchase   = "purchase"
	TransactionTypeRefund     = "refund"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction is a wallet ledger row. Deposits and refunds credit the balance,
// withdrawals and purchases debit it.
type Transaction struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Type      string    `db:"type" json:"type"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Credits reports whether the transaction type increases the balance.
func Credits(transactionType string) bool {
	return transactionType == TransactionTypeDeposit || transactionType == TransactionTypeRefund
}
