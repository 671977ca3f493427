package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/modules/club/dto"
	"bebit-api/modules/club/entity"
	"bebit-api/modules/club/repository"
	eventEntity "bebit-api/modules/event/entity"

	"github.com/google/uuid"
)

type ClubService struct {
	repo repository.ClubRepositoryInterface
}

func NewClubService(repo repository.ClubRepositoryInterface) *ClubService {
	return &ClubService{repo: repo}
}

// CreateProfile creates the 1:1 club profile for the session user.
func (s *ClubService) CreateProfile(ctx context.Context, principal authz.Principal, req *dto.CreateClubRequest) (*entity.Club, error) {
	existing, err := s.repo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Profil club déjà existant", nil)
	}

	club := &entity.Club{
		UserID:   principal.UserID,
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.repo.Create(ctx, club); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return club, nil
}

func (s *ClubService) GetClub(ctx context.Context, id uuid.UUID) (*entity.Club, error) {
	club, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if club == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Club introuvable", nil)
	}
	return club, nil
}

// GetByUserID resolves the club owned by a user; nil when the user has none.
func (s *ClubService) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Club, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ClubService) Popular(ctx context.Context, limit int) ([]entity.Club, error) {
	clubs, err := s.repo.Popular(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return clubs, nil
}

func (s *ClubService) UpdateProfile(ctx context.Context, principal authz.Principal, id uuid.UUID, req *dto.UpdateClubRequest) (*entity.Club, error) {
	club, err := s.GetClub(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsProfile(club.UserID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}

	updated, err := s.repo.Update(ctx, id, req.Name, req.Location)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Club introuvable", nil)
	}
	return updated, nil
}

func (s *ClubService) ApprovedEvents(ctx context.Context, clubID uuid.UUID) ([]eventEntity.Event, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}

	events, err := s.repo.ApprovedEvents(ctx, clubID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return events, nil
}
