package service

import (
	"context"
	"time"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	"bebit-api/core/params"
	artistEntity "bebit-api/modules/artist/entity"
	clubEntity "bebit-api/modules/club/entity"
	"bebit-api/modules/event/dto"
	"bebit-api/modules/event/entity"
	"bebit-api/modules/event/repository"

	"github.com/google/uuid"
)

// ClubResolver resolves club profiles for ownership checks and approval notices.
type ClubResolver interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*clubEntity.Club, error)
	GetClub(ctx context.Context, id uuid.UUID) (*clubEntity.Club, error)
}

// ArtistResolver resolves artist profiles when booking a lineup.
type ArtistResolver interface {
	GetArtist(ctx context.Context, id uuid.UUID) (*artistEntity.Artist, error)
}

// Notifier delivers asynchronous notifications to users.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, notifType string, data map[string]any) error
}

type EventService struct {
	repo     repository.EventRepositoryInterface
	clubs    ClubResolver
	artists  ArtistResolver
	notifier Notifier
}

func NewEventService(repo repository.EventRepositoryInterface, clubs ClubResolver, artists ArtistResolver, notifier Notifier) *EventService {
	return &EventService{
		repo:     repo,
		clubs:    clubs,
		artists:  artists,
		notifier: notifier,
	}
}

// CreateEvent creates an unapproved event for the session club. The club comes
// from the session, never from the body, and is_approved is always false on
// create.
func (s *EventService) CreateEvent(ctx context.Context, principal authz.Principal, req *dto.CreateEventRequest) (*entity.Event, error) {
	club, err := s.clubs.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if club == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "Profil club requis", nil)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date invalide", nil)
	}

	event := &entity.Event{
		Title:      req.Title,
		Date:       date,
		Category:   req.Category,
		ClubID:     club.ID,
		IsApproved: false,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Événement introuvable", nil)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, q params.ListQuery) ([]entity.Event, error) {
	events, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return events, nil
}

func (s *EventService) UpcomingEvents(ctx context.Context, limit int) ([]entity.Event, error) {
	events, err := s.repo.Upcoming(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return events, nil
}

// AddArtist books an artist on an event the session club owns. Booking fails when
// the artist has marked the event date unavailable.
func (s *EventService) AddArtist(ctx context.Context, principal authz.Principal, eventID uuid.UUID, req *dto.AddEventArtistRequest) (*entity.EventArtist, error) {
	event, err := s.ownedEvent(ctx, principal, eventID)
	if err != nil {
		return nil, err
	}

	artist, err := s.artists.GetArtist(ctx, req.ArtistID)
	if err != nil {
		return nil, err
	}

	eventDay := event.Date.Format("2006-01-02")
	for _, day := range artist.UnavailableDates {
		if day == eventDay {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Artiste indisponible à cette date", nil)
		}
	}

	link := &entity.EventArtist{
		EventID:  event.ID,
		ArtistID: artist.ID,
		Fee:      req.Fee,
	}
	if err := s.repo.AddArtist(ctx, link); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return link, nil
}

func (s *EventService) Lineup(ctx context.Context, eventID uuid.UUID) ([]entity.LineupEntry, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	lineup, err := s.repo.Lineup(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return lineup, nil
}

func (s *EventService) PendingEvents(ctx context.Context) ([]entity.Event, error) {
	events, err := s.repo.Pending(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return events, nil
}

// ApproveEvent flips is_approved and notifies the owning club. Role gating happens
// in the admin router.
func (s *EventService) ApproveEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Événement introuvable", nil)
	}

	if s.notifier != nil {
		club, err := s.clubs.GetClub(ctx, event.ClubID)
		if err == nil && club != nil {
			if err := s.notifier.Notify(ctx, club.UserID,
				"Événement approuvé",
				"Votre événement \""+event.Title+"\" a été approuvé",
				"event_approved",
				map[string]any{"event_id": event.ID.String()},
			); err != nil {
				logger.Error("EventService:ApproveEvent:Notify:Error:", err)
			}
		}
	}

	return event, nil
}

// ownedEvent loads an event and checks the session club owns it.
func (s *EventService) ownedEvent(ctx context.Context, principal authz.Principal, eventID uuid.UUID) (*entity.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	club, err := s.clubs.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if club == nil || club.ID != event.ClubID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}
	return event, nil
}
