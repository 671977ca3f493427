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
	"bebit-api/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `id, title, date, category, club_id, is_approved, created_at`

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, q params.ListQuery) ([]entity.Event, error)
	Upcoming(ctx context.Context, limit int) ([]entity.Event, error)
	Pending(ctx context.Context) ([]entity.Event, error)
	Approve(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	AddArtist(ctx context.Context, link *entity.EventArtist) error
	Lineup(ctx context.Context, eventID uuid.UUID) ([]entity.LineupEntry, error)
}

type EventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, date, category, club_id, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	event.CreatedAt = time.Now()

	row := r.db.QueryRowContext(ctx, query,
		event.Title,
		event.Date,
		event.Category,
		event.ClubID,
		event.IsApproved,
		event.CreatedAt,
	)
	if err := row.Scan(&event.ID); err != nil {
		logger.Error("EventRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

// List returns approved events, optionally filtered by a case-insensitive title
// substring and an exact category.
func (r *EventRepository) List(ctx context.Context, q params.ListQuery) ([]entity.Event, error) {
	conditions := []string{"is_approved = true"}
	args := []any{}
	argIndex := 1

	if q.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argIndex))
		args = append(args, "%"+q.Search+"%")
		argIndex++
	}
	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, q.Category)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY date ASC
		LIMIT $%d
	`, eventColumns, strings.Join(conditions, " AND "), argIndex)
	args = append(args, q.Limit)

	var events []entity.Event
	err := r.db.SelectContext(ctx, &events, query, args...)
	if err != nil {
		logger.Error("EventRepository:List:Error:", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) Upcoming(ctx context.Context, limit int) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_approved = true AND date >= CURRENT_DATE
		ORDER BY date ASC
		LIMIT $1
	`
	var events []entity.Event
	err := r.db.SelectContext(ctx, &events, query, limit)
	if err != nil {
		logger.Error("EventRepository:Upcoming:Error:", err)
		return nil, err
	}
	return events, nil
}

// Pending lists unapproved events, oldest submission first.
func (r *EventRepository) Pending(ctx context.Context) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_approved = false
		ORDER BY created_at ASC
	`
	var events []entity.Event
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		logger.Error("EventRepository:Pending:Error:", err)
		return nil, err
	}
	return events, nil
}

// Approve flips is_approved and nothing else.
func (r *EventRepository) Approve(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		UPDATE events SET is_approved = true
		WHERE id = $1
		RETURNING ` + eventColumns
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:Approve:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) AddArtist(ctx context.Context, link *entity.EventArtist) error {
	query := `
		INSERT INTO event_artists (event_id, artist_id, fee)
		VALUES ($1, $2, $3)
	`
	err := r.db.ExecContext(ctx, query, link.EventID, link.ArtistID, link.Fee)
	if err != nil {
		logger.Error("EventRepository:AddArtist:Error:", err)
		return err
	}
	return nil
}

func (r *EventRepository) Lineup(ctx context.Context, eventID uuid.UUID) ([]entity.LineupEntry, error) {
	query := `
		SELECT ea.artist_id, a.display_name, ea.fee
		FROM event_artists ea
		JOIN artists a ON a.id = ea.artist_id
		WHERE ea.event_id = $1
		ORDER BY ea.fee DESC
	`
	var lineup []entity.LineupEntry
	err := r.db.SelectContext(ctx, &lineup, query, eventID)
	if err != nil {
		logger.Error("EventRepository:Lineup:Error:", err)
		return nil, err
	}
	return lineup, nil
}
