package repository

import (
	"context"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/admin/entity"
)

type StatsRepositoryInterface interface {
	CountUsers(ctx context.Context) (int, error)
	CountArtists(ctx context.Context) (int, error)
	CountClubs(ctx context.Context) (int, error)
	CountEvents(ctx context.Context) (int, error)
	CountPendingEvents(ctx context.Context) (int, error)
	EventsPerMonth(ctx context.Context, months int) ([]entity.MonthlyCount, error)
	TransactionVolumePerMonth(ctx context.Context, months int) ([]entity.MonthlyCount, error)
}

type StatsRepository struct {
	db database.Database
}

func NewStatsRepository(db database.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) count(ctx context.Context, query string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		logger.Error("StatsRepository:Count:Error:", err)
		return 0, err
	}
	return count, nil
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatsRepository) CountArtists(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM artists`)
}

func (r *StatsRepository) CountClubs(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM clubs`)
}

func (r *StatsRepository) CountEvents(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM events`)
}

func (r *StatsRepository) CountPendingEvents(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM events WHERE is_approved = false`)
}

// EventsPerMonth buckets created events by calendar month over the trailing
// window, oldest first.
func (r *StatsRepository) EventsPerMonth(ctx context.Context, months int) ([]entity.MonthlyCount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COUNT(*) AS count,
		       0::numeric AS total
		FROM events
		WHERE created_at >= date_trunc('month', NOW()) - make_interval(months => $1)
		GROUP BY 1
		ORDER BY 1
	`
	var rows []entity.MonthlyCount
	if err := r.db.SelectContext(ctx, &rows, query, months); err != nil {
		logger.Error("StatsRepository:EventsPerMonth:Error:", err)
		return nil, err
	}
	return rows, nil
}

// TransactionVolumePerMonth sums completed transaction amounts by calendar month
// over the trailing window, oldest first.
func (r *StatsRepository) TransactionVolumePerMonth(ctx context.Context, months int) ([]entity.MonthlyCount, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COUNT(*) AS count,
		       COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE status = 'completed'
		  AND created_at >= date_trunc('month', NOW()) - make_interval(months => $1)
		GROUP BY 1
		ORDER BY 1
	`
	var rows []entity.MonthlyCount
	if err := r.db.SelectContext(ctx, &rows, query, months); err != nil {
		logger.Error("StatsRepository:TransactionVolumePerMonth:Error:", err)
		return nil, err
	}
	return rows, nil
}
