package service

import (
	"context"
	"time"

	"bebit-api/core/cache"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	"bebit-api/core/utils"
	"bebit-api/modules/auth/dto"
	"bebit-api/modules/user/entity"
	"bebit-api/modules/user/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	users repository.UserRepositoryInterface
	cache *cache.Cache
}

func NewAuthService(users repository.UserRepositoryInterface, cache *cache.Cache) *AuthService {
	return &AuthService{users: users, cache: cache}
}

// Register creates an account and issues a token pair. The admin role is never
// self-assignable.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Nom d'utilisateur déjà pris", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	user := &entity.User{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Identifiants invalides", nil)
	}

	return s.issueTokens(user)
}

// Logout blacklists the presented access token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Jeton invalide ou expiré", nil)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:Blacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return nil
}

// Refresh exchanges a refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil || claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Jeton invalide ou expiré", nil)
	}

	user, err := s.Me(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Utilisateur introuvable", nil)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.AuthResponse, error) {
	accessToken, err := utils.GenerateToken(user.ID, user.Username, user.Role, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Access:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, user.Username, user.Role, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Refresh:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	return &dto.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
