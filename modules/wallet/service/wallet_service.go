package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/modules/wallet/dto"
	"bebit-api/modules/wallet/entity"
	"bebit-api/modules/wallet/repository"
)

type WalletService struct {
	repo repository.TransactionRepositoryInterface
}

func NewWalletService(repo repository.TransactionRepositoryInterface) *WalletService {
	return &WalletService{repo: repo}
}

// CreateTransaction records a ledger row for the session user. Debits are refused
// when the completed balance cannot cover them.
func (s *WalletService) CreateTransaction(ctx context.Context, principal authz.Principal, req *dto.CreateTransactionRequest) (*entity.Transaction, error) {
	if !entity.Credits(req.Type) {
		balance, err := s.repo.Balance(ctx, principal.UserID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if balance < req.Amount {
			return nil, errors.NewAppError(errors.ErrInsufficientFunds, "Solde insuffisant", nil)
		}
	}

	transaction := &entity.Transaction{
		UserID: principal.UserID,
		Amount: req.Amount,
		Type:   req.Type,
		Status: entity.TransactionStatusCompleted,
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return transaction, nil
}

func (s *WalletService) ListTransactions(ctx context.Context, principal authz.Principal, limit int) ([]entity.Transaction, error) {
	transactions, err := s.repo.ListByUserID(ctx, principal.UserID, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return transactions, nil
}

func (s *WalletService) Balance(ctx context.Context, principal authz.Principal) (*dto.BalanceResponse, error) {
	balance, err := s.repo.Balance(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return &dto.BalanceResponse{Balance: balance}, nil
}
