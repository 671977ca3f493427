package repository

import (
	"context"
	"testing"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/params"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*EventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewEventRepository(database.New(sqlxDB)), mock
}

func eventRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "date", "category", "club_id", "is_approved", "created_at"})
	for _, id := range ids {
		rows.AddRow(id, "Halloween Rave", time.Now(), "techno", uuid.New(), true, time.Now())
	}
	return rows
}

func TestListApprovedOnly(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM events\s+WHERE is_approved = true\s+ORDER BY date ASC`).
		WithArgs(20).
		WillReturnRows(eventRows(id))

	events, err := repo.List(context.Background(), params.ListQuery{Limit: 20})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithSearchAndCategory(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE is_approved = true AND title ILIKE \$1 AND category = \$2`).
		WithArgs("%rave%", "techno", 10).
		WillReturnRows(eventRows(uuid.New()))

	events, err := repo.List(context.Background(), params.ListQuery{
		Limit: 10, Search: "rave", Category: "techno",
	})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(eventRows())

	event, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveReturnsUpdatedRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE events SET is_approved = true\s+WHERE id = \$1\s+RETURNING`).
		WithArgs(id).
		WillReturnRows(eventRows(id))

	event, err := repo.Approve(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, id, event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`UPDATE events SET is_approved = true`).
		WithArgs(id).
		WillReturnRows(eventRows())

	event, err := repo.Approve(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}
