package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	artistEntity "bebit-api/modules/artist/entity"
	clubEntity "bebit-api/modules/club/entity"
	eventEntity "bebit-api/modules/event/entity"
	"bebit-api/modules/feedback/dto"
	"bebit-api/modules/feedback/entity"
	"bebit-api/modules/feedback/repository"

	"github.com/google/uuid"
)

type EventResolver interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

type ClubResolver interface {
	GetClub(ctx context.Context, id uuid.UUID) (*clubEntity.Club, error)
}

type ArtistResolver interface {
	GetArtist(ctx context.Context, id uuid.UUID) (*artistEntity.Artist, error)
}

type FeedbackService struct {
	repo    repository.FeedbackRepositoryInterface
	events  EventResolver
	clubs   ClubResolver
	artists ArtistResolver
}

func NewFeedbackService(repo repository.FeedbackRepositoryInterface, events EventResolver, clubs ClubResolver, artists ArtistResolver) *FeedbackService {
	return &FeedbackService{
		repo:    repo,
		events:  events,
		clubs:   clubs,
		artists: artists,
	}
}

// CreateFeedback records a review. The reviewer identity and type come from the
// session, never from the body.
func (s *FeedbackService) CreateFeedback(ctx context.Context, principal authz.Principal, req *dto.CreateFeedbackRequest) (*entity.Feedback, error) {
	if err := s.resolveContext(ctx, req.ContextType, req.ContextID); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		ReviewerID:   principal.UserID,
		ReviewerType: reviewerTypeForRole(principal.Role),
		ContextID:    req.ContextID,
		ContextType:  req.ContextType,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return feedback, nil
}

func (s *FeedbackService) ListByContext(ctx context.Context, contextType string, contextID uuid.UUID, limit int) ([]entity.Feedback, error) {
	rows, err := s.repo.ListByContext(ctx, contextType, contextID, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return rows, nil
}

// Reply lets the reviewed party answer a review, once. For event feedback the
// owning club holds the right.
func (s *FeedbackService) Reply(ctx context.Context, principal authz.Principal, id uuid.UUID, reply string) (*entity.Feedback, error) {
	feedback, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if feedback == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Avis introuvable", nil)
	}
	if feedback.Reply != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Réponse déjà publiée", nil)
	}

	ownerUserID, err := s.contextOwner(ctx, feedback.ContextType, feedback.ContextID)
	if err != nil {
		return nil, err
	}
	if !principal.OwnsProfile(ownerUserID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}

	updated, err := s.repo.SetReply(ctx, id, reply)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Avis introuvable", nil)
	}
	return updated, nil
}

// resolveContext checks the reviewed target exists.
func (s *FeedbackService) resolveContext(ctx context.Context, contextType string, contextID uuid.UUID) error {
	var err error
	switch contextType {
	case entity.ContextTypeEvent:
		_, err = s.events.GetEvent(ctx, contextID)
	case entity.ContextTypeClub:
		_, err = s.clubs.GetClub(ctx, contextID)
	case entity.ContextTypeArtist:
		_, err = s.artists.GetArtist(ctx, contextID)
	default:
		return errors.NewAppError(errors.ErrInvalidInput, "Type de contexte invalide", nil)
	}
	return err
}

// contextOwner resolves the user entitled to reply for a given context.
func (s *FeedbackService) contextOwner(ctx context.Context, contextType string, contextID uuid.UUID) (uuid.UUID, error) {
	switch contextType {
	case entity.ContextTypeEvent:
		event, err := s.events.GetEvent(ctx, contextID)
		if err != nil {
			return uuid.Nil, err
		}
		club, err := s.clubs.GetClub(ctx, event.ClubID)
		if err != nil {
			return uuid.Nil, err
		}
		return club.UserID, nil
	case entity.ContextTypeClub:
		club, err := s.clubs.GetClub(ctx, contextID)
		if err != nil {
			return uuid.Nil, err
		}
		return club.UserID, nil
	case entity.ContextTypeArtist:
		artist, err := s.artists.GetArtist(ctx, contextID)
		if err != nil {
			return uuid.Nil, err
		}
		return artist.UserID, nil
	default:
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "Type de contexte invalide", nil)
	}
}

func reviewerTypeForRole(role string) string {
	switch role {
	case constants.RoleArtist:
		return entity.ReviewerTypeArtist
	case constants.RoleClub:
		return entity.ReviewerTypeClub
	default:
		return entity.ReviewerTypeUser
	}
}
