package service

import (
	"context"
	"errors"
	"testing"

	"bebit-api/modules/admin/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	failMonthly bool
}

func (r *fakeStatsRepo) CountUsers(context.Context) (int, error)         { return 120, nil }
func (r *fakeStatsRepo) CountArtists(context.Context) (int, error)       { return 30, nil }
func (r *fakeStatsRepo) CountClubs(context.Context) (int, error)         { return 12, nil }
func (r *fakeStatsRepo) CountEvents(context.Context) (int, error)        { return 45, nil }
func (r *fakeStatsRepo) CountPendingEvents(context.Context) (int, error) { return 3, nil }

func (r *fakeStatsRepo) EventsPerMonth(_ context.Context, months int) ([]entity.MonthlyCount, error) {
	if r.failMonthly {
		return nil, errors.New("boom")
	}
	return []entity.MonthlyCount{{Month: "2026-07", Count: 8}, {Month: "2026-08", Count: 11}}, nil
}

func (r *fakeStatsRepo) TransactionVolumePerMonth(_ context.Context, months int) ([]entity.MonthlyCount, error) {
	return []entity.MonthlyCount{{Month: "2026-08", Count: 40, Total: 1250.5}}, nil
}

func TestStatsAggregatesAllCounters(t *testing.T) {
	svc := NewAdminService(&fakeStatsRepo{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalUsers)
	assert.Equal(t, 30, stats.TotalArtists)
	assert.Equal(t, 12, stats.TotalClubs)
	assert.Equal(t, 45, stats.TotalEvents)
	assert.Equal(t, 3, stats.PendingEvents)
	assert.Len(t, stats.EventsPerMonth, 2)
	require.Len(t, stats.TransactionVolume, 1)
	assert.Equal(t, 1250.5, stats.TransactionVolume[0].Total)
}

func TestStatsPropagatesFailure(t *testing.T) {
	svc := NewAdminService(&fakeStatsRepo{failMonthly: true})

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
