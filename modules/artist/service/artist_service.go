package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/artist/dto"
	"bebit-api/modules/artist/entity"
	"bebit-api/modules/artist/repository"
	eventEntity "bebit-api/modules/event/entity"

	"github.com/google/uuid"
)

type ArtistService struct {
	repo repository.ArtistRepositoryInterface
}

func NewArtistService(repo repository.ArtistRepositoryInterface) *ArtistService {
	return &ArtistService{repo: repo}
}

// CreateProfile creates the 1:1 artist profile for the session user.
func (s *ArtistService) CreateProfile(ctx context.Context, principal authz.Principal, req *dto.CreateArtistRequest) (*entity.Artist, error) {
	existing, err := s.repo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Profil artiste déjà existant", nil)
	}

	artist := &entity.Artist{
		UserID:      principal.UserID,
		DisplayName: req.DisplayName,
		Genres:      req.Genres,
		Bio:         req.Bio,
		Rate:        req.Rate,
	}
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return artist, nil
}

func (s *ArtistService) GetArtist(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if artist == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Artiste introuvable", nil)
	}
	return artist, nil
}

// GetByUserID resolves the artist owned by a user; nil when the user has none.
func (s *ArtistService) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ArtistService) Trending(ctx context.Context, limit int) ([]entity.Artist, error) {
	artists, err := s.repo.Trending(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return artists, nil
}

func (s *ArtistService) Search(ctx context.Context, q params.ListQuery) ([]entity.Artist, error) {
	artists, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return artists, nil
}

func (s *ArtistService) UpdateProfile(ctx context.Context, principal authz.Principal, id uuid.UUID, req *dto.UpdateArtistRequest) (*entity.Artist, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsProfile(artist.UserID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}

	updated, err := s.repo.Update(ctx, id, entity.ArtistUpdate{
		DisplayName: req.DisplayName,
		Genres:      req.Genres,
		Bio:         req.Bio,
		Rate:        req.Rate,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Artiste introuvable", nil)
	}
	return updated, nil
}

// SetUnavailableDates replaces the artist's full unavailable-date set.
func (s *ArtistService) SetUnavailableDates(ctx context.Context, principal authz.Principal, id uuid.UUID, dates []string) (*entity.Artist, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsProfile(artist.UserID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}

	updated, err := s.repo.ReplaceUnavailableDates(ctx, id, dates)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Artiste introuvable", nil)
	}
	return updated, nil
}

// UpcomingEvents resolves the artist profile from the session user, then lists the
// approved future events they are booked on.
func (s *ArtistService) UpcomingEvents(ctx context.Context, principal authz.Principal) ([]eventEntity.Event, error) {
	artist, err := s.repo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if artist == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Profil artiste introuvable", nil)
	}

	events, err := s.repo.UpcomingEvents(ctx, artist.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return events, nil
}
