package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/club/entity"
	eventEntity "bebit-api/modules/event/entity"

	"github.com/google/uuid"
)

const clubColumns = `id, user_id, name, rating, location, created_at, updated_at`

type ClubRepositoryInterface interface {
	Create(ctx context.Context, club *entity.Club) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Club, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Club, error)
	Popular(ctx context.Context, limit int) ([]entity.Club, error)
	Update(ctx context.Context, id uuid.UUID, name, location *string) (*entity.Club, error)
	ApprovedEvents(ctx context.Context, clubID uuid.UUID) ([]eventEntity.Event, error)
}

type ClubRepository struct {
	db database.Database
}

func NewClubRepository(db database.Database) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, club *entity.Club) error {
	query := `
		INSERT INTO clubs (user_id, name, rating, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	now := time.Now()
	club.CreatedAt = now
	club.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		club.UserID,
		club.Name,
		club.Rating,
		club.Location,
		club.CreatedAt,
		club.UpdatedAt,
	)
	if err := row.Scan(&club.ID); err != nil {
		logger.Error("ClubRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	var club entity.Club
	err := r.db.GetContext(ctx, &club, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClubRepository:GetByID:Error:", err)
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE user_id = $1`
	var club entity.Club
	err := r.db.GetContext(ctx, &club, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClubRepository:GetByUserID:Error:", err)
		return nil, err
	}
	return &club, nil
}

// Popular orders all clubs by rating, highest first.
func (r *ClubRepository) Popular(ctx context.Context, limit int) ([]entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY rating DESC LIMIT $1`
	var clubs []entity.Club
	err := r.db.SelectContext(ctx, &clubs, query, limit)
	if err != nil {
		logger.Error("ClubRepository:Popular:Error:", err)
		return nil, err
	}
	return clubs, nil
}

func (r *ClubRepository) Update(ctx context.Context, id uuid.UUID, name, location *string) (*entity.Club, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	argIndex := 1

	if name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argIndex))
		args = append(args, *name)
		argIndex++
	}
	if location != nil {
		sets = append(sets, fmt.Sprintf("location = $%d", argIndex))
		args = append(args, *location)
		argIndex++
	}

	query := fmt.Sprintf(`
		UPDATE clubs SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argIndex, clubColumns)
	args = append(args, id)

	var club entity.Club
	err := r.db.GetContext(ctx, &club, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ClubRepository:Update:Error:", err)
		return nil, err
	}
	return &club, nil
}

// ApprovedEvents lists the club's approved events, soonest first.
func (r *ClubRepository) ApprovedEvents(ctx context.Context, clubID uuid.UUID) ([]eventEntity.Event, error) {
	query := `
		SELECT id, title, date, category, club_id, is_approved, created_at
		FROM events
		WHERE club_id = $1 AND is_approved = true
		ORDER BY date ASC
	`
	var events []eventEntity.Event
	err := r.db.SelectContext(ctx, &events, query, clubID)
	if err != nil {
		logger.Error("ClubRepository:ApprovedEvents:Error:", err)
		return nil, err
	}
	return events, nil
}
