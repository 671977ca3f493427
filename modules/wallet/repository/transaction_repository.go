package repository

import (
	"context"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/wallet/entity"

	"github.com/google/uuid"
)

type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error)
	Balance(ctx context.Context, userID uuid.UUID) (float64, error)
}

type TransactionRepository struct {
	db database.Database
}

func NewTransactionRepository(db database.Database) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	transaction.CreatedAt = time.Now()

	row := r.db.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.Amount,
		transaction.Type,
		transaction.Status,
		transaction.CreatedAt,
	)
	if err := row.Scan(&transaction.ID); err != nil {
		logger.Error("TransactionRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var transactions []entity.Transaction
	err := r.db.SelectContext(ctx, &transactions, query, userID, limit)
	if err != nil {
		logger.Error("TransactionRepository:ListByUserID:Error:", err)
		return nil, err
	}
	return transactions, nil
}

// Balance sums completed credits minus completed debits.
func (r *TransactionRepository) Balance(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN type IN ('deposit', 'refund') THEN amount ELSE -amount END
		), 0)
		FROM transactions
		WHERE user_id = $1 AND status = 'completed'
	`
	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID)
	if err != nil {
		logger.Error("TransactionRepository:Balance:Error:", err)
		return 0, err
	}
	return balance, nil
}
