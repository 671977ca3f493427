package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	"bebit-api/core/utils"
	"bebit-api/modules/user/dto"
	"bebit-api/modules/user/entity"
	"bebit-api/modules/user/repository"

	"github.com/google/uuid"
)

type UserService struct {
	repo repository.UserRepositoryInterface
}

func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Utilisateur introuvable", nil)
	}
	return user, nil
}

// UpdateUser applies a partial update. Only the user themself or an admin may touch
// the row.
func (s *UserService) UpdateUser(ctx context.Context, principal authz.Principal, id uuid.UUID, req *dto.UpdateUserRequest) (*entity.User, error) {
	if !principal.IsSelf(id) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}

	password := req.Password
	if password != nil {
		hashed, err := utils.HashPassword(*password)
		if err != nil {
			logger.Error("UserService:UpdateUser:HashPassword:Error:", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		password = &hashed
	}

	if req.Username != nil {
		existing, err := s.repo.GetByUsername(ctx, *req.Username)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if existing != nil && existing.ID != id {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Nom d'utilisateur déjà pris", nil)
		}
	}

	user, err := s.repo.Update(ctx, id, req.Username, password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Utilisateur introuvable", nil)
	}
	return user, nil
}

// VerifyUser flips is_verified. Role gating happens in the admin router.
func (s *UserService) VerifyUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.SetVerified(ctx, id, true)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Utilisateur introuvable", nil)
	}
	return user, nil
}
