package repository

import (
	"context"
	"database/sql"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/invitation/entity"

	"github.com/google/uuid"
)

const invitationColumns = `id, club_id, artist_id, status, responded_at, created_at, updated_at`

type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)
	ListByArtistID(ctx context.Context, artistID uuid.UUID) ([]entity.Invitation, error)
	ListByClubID(ctx context.Context, clubID uuid.UUID) ([]entity.Invitation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) (*entity.Invitation, error)
}

type InvitationRepository struct {
	db database.Database
}

func NewInvitationRepository(db database.Database) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (club_id, artist_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	now := time.Now()
	invitation.CreatedAt = now
	invitation.UpdatedAt = now
	if invitation.Status == "" {
		invitation.Status = entity.InvitationStatusPending
	}

	row := r.db.QueryRowContext(ctx, query,
		invitation.ClubID,
		invitation.ArtistID,
		invitation.Status,
		invitation.CreatedAt,
		invitation.UpdatedAt,
	)
	if err := row.Scan(&invitation.ID); err != nil {
		logger.Error("InvitationRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	var invitation entity.Invitation
	err := r.db.GetContext(ctx, &invitation, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetByID:Error:", err)
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) ListByArtistID(ctx context.Context, artistID uuid.UUID) ([]entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE artist_id = $1
		ORDER BY created_at DESC
	`
	var invitations []entity.Invitation
	err := r.db.SelectContext(ctx, &invitations, query, artistID)
	if err != nil {
		logger.Error("InvitationRepository:ListByArtistID:Error:", err)
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) ListByClubID(ctx context.Context, clubID uuid.UUID) ([]entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE club_id = $1
		ORDER BY created_at DESC
	`
	var invitations []entity.Invitation
	err := r.db.SelectContext(ctx, &invitations, query, clubID)
	if err != nil {
		logger.Error("InvitationRepository:ListByClubID:Error:", err)
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) (*entity.Invitation, error) {
	query := `
		UPDATE invitations
		SET status = $1, responded_at = $2, updated_at = $2
		WHERE id = $3
		RETURNING ` + invitationColumns
	var invitation entity.Invitation
	err := r.db.GetContext(ctx, &invitation, query, status, time.Now(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:UpdateStatus:Error:", err)
		return nil, err
	}
	return &invitation, nil
}
