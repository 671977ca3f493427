package service

import (
	"context"
	"testing"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/modules/wallet/dto"
	"bebit-api/modules/wallet/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactionRepo struct {
	rows []entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	transaction.ID = uuid.New()
	r.rows = append(r.rows, *transaction)
	return nil
}

func (r *fakeTransactionRepo) ListByUserID(_ context.Context, userID uuid.UUID, limit int) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, tx := range r.rows {
		if tx.UserID == userID && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Balance(_ context.Context, userID uuid.UUID) (float64, error) {
	var balance float64
	for _, tx := range r.rows {
		if tx.UserID != userID || tx.Status != entity.TransactionStatusCompleted {
			continue
		}
		if entity.Credits(tx.Type) {
			balance += tx.Amount
		} else {
			balance -= tx.Amount
		}
	}
	return balance, nil
}

func walletCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestDepositAlwaysAccepted(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewWalletService(repo)
	principal := authz.Principal{UserID: uuid.New()}

	tx, err := svc.CreateTransaction(context.Background(), principal, &dto.CreateTransactionRequest{
		Amount: 50, Type: entity.TransactionTypeDeposit,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, principal.UserID, tx.UserID)
}

func TestWithdrawalRequiresFunds(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewWalletService(repo)
	principal := authz.Principal{UserID: uuid.New()}

	_, err := svc.CreateTransaction(context.Background(), principal, &dto.CreateTransactionRequest{
		Amount: 10, Type: entity.TransactionTypeWithdrawal,
	})
	assert.Equal(t, errors.ErrInsufficientFunds, walletCode(t, err))
	assert.Empty(t, repo.rows)
}

func TestWithdrawalWithinBalance(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewWalletService(repo)
	principal := authz.Principal{UserID: uuid.New()}

	_, err := svc.CreateTransaction(context.Background(), principal, &dto.CreateTransactionRequest{
		Amount: 100, Type: entity.TransactionTypeDeposit,
	})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), principal, &dto.CreateTransactionRequest{
		Amount: 60, Type: entity.TransactionTypePurchase,
	})
	require.NoError(t, err)

	balance, err := svc.Balance(context.Background(), principal)
	require.NoError(t, err)
	assert.Equal(t, 40.0, balance.Balance)

	// remaining balance no longer covers another 60
	_, err = svc.CreateTransaction(context.Background(), principal, &dto.CreateTransactionRequest{
		Amount: 60, Type: entity.TransactionTypePurchase,
	})
	assert.Equal(t, errors.ErrInsufficientFunds, walletCode(t, err))
}

func TestListTransactionsScopedToUser(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewWalletService(repo)
	alice := authz.Principal{UserID: uuid.New()}
	bob := authz.Principal{UserID: uuid.New()}

	_, err := svc.CreateTransaction(context.Background(), alice, &dto.CreateTransactionRequest{
		Amount: 20, Type: entity.TransactionTypeDeposit,
	})
	require.NoError(t, err)

	mine, err := svc.ListTransactions(context.Background(), alice, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListTransactions(context.Background(), bob, 10)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
