package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/core/params"
	"bebit-api/modules/artist/entity"
	eventEntity "bebit-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const artistColumns = `id, user_id, display_name, genres, bio, rate, popularity, unavailable_dates, created_at, updated_at`

type ArtistRepositoryInterface interface {
	Create(ctx context.Context, artist *entity.Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error)
	Trending(ctx context.Context, limit int) ([]entity.Artist, error)
	Search(ctx context.Context, q params.ListQuery) ([]entity.Artist, error)
	Update(ctx context.Context, id uuid.UUID, fields entity.ArtistUpdate) (*entity.Artist, error)
	ReplaceUnavailableDates(ctx context.Context, id uuid.UUID, dates []string) (*entity.Artist, error)
	UpcomingEvents(ctx context.Context, artistID uuid.UUID) ([]eventEntity.Event, error)
}

type ArtistRepository struct {
	db database.Database
}

func NewArtistRepository(db database.Database) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (user_id, display_name, genres, bio, rate, popularity, unavailable_dates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	now := time.Now()
	artist.CreatedAt = now
	artist.UpdatedAt = now
	if artist.Genres == nil {
		artist.Genres = pq.StringArray{}
	}
	if artist.UnavailableDates == nil {
		artist.UnavailableDates = pq.StringArray{}
	}

	row := r.db.QueryRowContext(ctx, query,
		artist.UserID,
		artist.DisplayName,
		artist.Genres,
		artist.Bio,
		artist.Rate,
		artist.Popularity,
		artist.UnavailableDates,
		artist.CreatedAt,
		artist.UpdatedAt,
	)
	if err := row.Scan(&artist.ID); err != nil {
		logger.Error("ArtistRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	var artist entity.Artist
	err := r.db.GetContext(ctx, &artist, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ArtistRepository:GetByID:Error:", err)
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE user_id = $1`
	var artist entity.Artist
	err := r.db.GetContext(ctx, &artist, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ArtistRepository:GetByUserID:Error:", err)
		return nil, err
	}
	return &artist, nil
}

// Trending orders all artists by popularity, highest first.
func (r *ArtistRepository) Trending(ctx context.Context, limit int) ([]entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY popularity DESC LIMIT $1`
	var artists []entity.Artist
	err := r.db.SelectContext(ctx, &artists, query, limit)
	if err != nil {
		logger.Error("ArtistRepository:Trending:Error:", err)
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) Search(ctx context.Context, q params.ListQuery) ([]entity.Artist, error) {
	conditions := []string{}
	args := []any{}
	argIndex := 1

	if q.Search != "" {
		conditions = append(conditions, fmt.Sprintf("display_name ILIKE $%d", argIndex))
		args = append(args, "%"+q.Search+"%")
		argIndex++
	}
	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(genres)", argIndex))
		args = append(args, q.Category)
		argIndex++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT %s FROM artists%s ORDER BY popularity DESC LIMIT $%d`,
		artistColumns, whereClause, argIndex)
	args = append(args, q.Limit)

	var artists []entity.Artist
	err := r.db.SelectContext(ctx, &artists, query, args...)
	if err != nil {
		logger.Error("ArtistRepository:Search:Error:", err)
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) Update(ctx context.Context, id uuid.UUID, fields entity.ArtistUpdate) (*entity.Artist, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}
	argIndex := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if fields.DisplayName != nil {
		appendSet("display_name", *fields.DisplayName)
	}
	if fields.Genres != nil {
		appendSet("genres", pq.StringArray(fields.Genres))
	}
	if fields.Bio != nil {
		appendSet("bio", *fields.Bio)
	}
	if fields.Rate != nil {
		appendSet("rate", *fields.Rate)
	}

	query := fmt.Sprintf(`
		UPDATE artists SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argIndex, artistColumns)
	args = append(args, id)

	var artist entity.Artist
	err := r.db.GetContext(ctx, &artist, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ArtistRepository:Update:Error:", err)
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) ReplaceUnavailableDates(ctx context.Context, id uuid.UUID, dates []string) (*entity.Artist, error) {
	query := `
		UPDATE artists SET unavailable_dates = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + artistColumns
	var artist entity.Artist
	err := r.db.GetContext(ctx, &artist, query, pq.StringArray(dates), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ArtistRepository:ReplaceUnavailableDates:Error:", err)
		return nil, err
	}
	return &artist, nil
}

// UpcomingEvents lists approved future events the artist is booked on.
func (r *ArtistRepository) UpcomingEvents(ctx context.Context, artistID uuid.UUID) ([]eventEntity.Event, error) {
	query := `
		SELECT e.id, e.title, e.date, e.category, e.club_id, e.is_approved, e.created_at
		FROM events e
		JOIN event_artists ea ON ea.event_id = e.id
		WHERE ea.artist_id = $1 AND e.is_approved = true AND e.date >= CURRENT_DATE
		ORDER BY e.date ASC
	`
	var events []eventEntity.Event
	err := r.db.SelectContext(ctx, &events, query, artistID)
	if err != nil {
		logger.Error("ArtistRepository:UpcomingEvents:Error:", err)
		return nil, err
	}
	return events, nil
}
