package service

import (
	"context"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	artistEntity "bebit-api/modules/artist/entity"
	clubEntity "bebit-api/modules/club/entity"
	"bebit-api/modules/invitation/dto"
	"bebit-api/modules/invitation/entity"
	"bebit-api/modules/invitation/repository"

	"github.com/google/uuid"
)

type ArtistResolver interface {
	GetArtist(ctx context.Context, id uuid.UUID) (*artistEntity.Artist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*artistEntity.Artist, error)
}

type ClubResolver interface {
	GetClub(ctx context.Context, id uuid.UUID) (*clubEntity.Club, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*clubEntity.Club, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, notifType string, data map[string]any) error
}

type InvitationService struct {
	repo     repository.InvitationRepositoryInterface
	artists  ArtistResolver
	clubs    ClubResolver
	notifier Notifier
}

func NewInvitationService(repo repository.InvitationRepositoryInterface, artists ArtistResolver, clubs ClubResolver, notifier Notifier) *InvitationService {
	return &InvitationService{
		repo:     repo,
		artists:  artists,
		clubs:    clubs,
		notifier: notifier,
	}
}

// CreateInvitation opens a pending booking proposal from the session club to an
// artist and notifies them.
func (s *InvitationService) CreateInvitation(ctx context.Context, principal authz.Principal, req *dto.CreateInvitationRequest) (*entity.Invitation, error) {
	club, err := s.clubs.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if club == nil {
		return nil, errors.NewAppError(errors.ErrForbidden, "Profil club requis", nil)
	}

	artist, err := s.artists.GetArtist(ctx, req.ArtistID)
	if err != nil {
		return nil, err
	}

	invitation := &entity.Invitation{
		ClubID:   club.ID,
		ArtistID: artist.ID,
		Status:   entity.InvitationStatusPending,
	}
	if err := s.repo.Create(ctx, invitation); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	s.notify(ctx, artist.UserID,
		"Nouvelle invitation",
		"Le club "+club.Name+" souhaite vous programmer",
		invitation)

	return invitation, nil
}

// ListInvitations returns the invitations the session principal is a party to:
// artists see proposals addressed to them, clubs see proposals they sent.
func (s *InvitationService) ListInvitations(ctx context.Context, principal authz.Principal) ([]entity.Invitation, error) {
	switch principal.Role {
	case constants.RoleArtist:
		artist, err := s.artists.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if artist == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Profil artiste introuvable", nil)
		}
		invitations, err := s.repo.ListByArtistID(ctx, artist.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		return invitations, nil
	case constants.RoleClub:
		club, err := s.clubs.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if club == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Profil club introuvable", nil)
		}
		invitations, err := s.repo.ListByClubID(ctx, club.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		return invitations, nil
	default:
		return nil, errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
	}
}

// UpdateStatus applies one transition of the invitation status machine. The artist
// party may confirm or decline, the club party may cancel; the row is untouched on
// any rejection.
func (s *InvitationService) UpdateStatus(ctx context.Context, principal authz.Principal, id uuid.UUID, newStatus entity.InvitationStatus) (*entity.Invitation, error) {
	if !newStatus.Valid() || newStatus == entity.InvitationStatusPending {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Statut invalide", nil)
	}

	invitation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if invitation == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invitation introuvable", nil)
	}

	if err := s.checkParty(ctx, principal, invitation, newStatus); err != nil {
		return nil, err
	}

	if !invitation.Status.CanTransitionTo(newStatus) {
		return nil, errors.NewAppError(errors.ErrInvalidTransition,
			"Transition de statut non autorisée", map[string]string{
				"from": string(invitation.Status),
				"to":   string(newStatus),
			})
	}

	updated, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	if updated == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invitation introuvable", nil)
	}

	s.notifyCounterparty(ctx, principal, updated)
	return updated, nil
}

// checkParty verifies the principal is the right party for the requested
// transition: confirm/decline belong to the invited artist, cancel to the club.
func (s *InvitationService) checkParty(ctx context.Context, principal authz.Principal, invitation *entity.Invitation, newStatus entity.InvitationStatus) error {
	switch newStatus {
	case entity.InvitationStatusConfirmed, entity.InvitationStatusDeclined:
		artist, err := s.artists.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if artist == nil || artist.ID != invitation.ArtistID {
			return errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
		}
	case entity.InvitationStatusCancelled:
		club, err := s.clubs.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
		}
		if club == nil || club.ID != invitation.ClubID {
			return errors.NewAppError(errors.ErrForbidden, "Accès refusé", nil)
		}
	default:
		return errors.NewAppError(errors.ErrInvalidInput, "Statut invalide", nil)
	}
	return nil
}

// notifyCounterparty tells the other side about the status change.
func (s *InvitationService) notifyCounterparty(ctx context.Context, principal authz.Principal, invitation *entity.Invitation) {
	var title, message string
	switch invitation.Status {
	case entity.InvitationStatusConfirmed:
		title, message = "Invitation confirmée", "L'artiste a confirmé votre invitation"
	case entity.InvitationStatusDeclined:
		title, message = "Invitation déclinée", "L'artiste a décliné votre invitation"
	case entity.InvitationStatusCancelled:
		title, message = "Invitation annulée", "Le club a annulé l'invitation"
	default:
		return
	}

	if invitation.Status == entity.InvitationStatusCancelled {
		artist, err := s.artists.GetArtist(ctx, invitation.ArtistID)
		if err != nil {
			logger.Error("InvitationService:NotifyCounterparty:GetArtist:Error:", err)
			return
		}
		s.notify(ctx, artist.UserID, title, message, invitation)
		return
	}

	club, err := s.clubs.GetClub(ctx, invitation.ClubID)
	if err != nil {
		logger.Error("InvitationService:NotifyCounterparty:GetClub:Error:", err)
		return
	}
	s.notify(ctx, club.UserID, title, message, invitation)
}

func (s *InvitationService) notify(ctx context.Context, userID uuid.UUID, title, message string, invitation *entity.Invitation) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, title, message, "invitation", map[string]any{
		"invitation_id": invitation.ID.String(),
		"status":        string(invitation.Status),
	}); err != nil {
		logger.Error("InvitationService:Notify:Error:", err)
	}
}
