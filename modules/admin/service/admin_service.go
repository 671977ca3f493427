package service

import (
	"context"

	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/modules/admin/entity"
	"bebit-api/modules/admin/repository"
	evententity "bebit-api/modules/event/entity"
	userentity "bebit-api/modules/user/entity"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// UserVerifier covers the user-side moderation action the admin surface exposes.
type UserVerifier interface {
	VerifyUser(ctx context.Context, id uuid.UUID) (*userentity.User, error)
}

// EventModerator covers the event-side moderation actions the admin surface exposes.
type EventModerator interface {
	PendingEvents(ctx context.Context) ([]evententity.Event, error)
	ApproveEvent(ctx context.Context, id uuid.UUID) (*evententity.Event, error)
}

type AdminService struct {
	repo repository.StatsRepositoryInterface
}

func NewAdminService(repo repository.StatsRepositoryInterface) *AdminService {
	return &AdminService{repo: repo}
}

// Stats gathers platform counters and trailing monthly aggregates. The queries
// are independent, so they fan out concurrently.
func (s *AdminService) Stats(ctx context.Context) (*entity.Stats, error) {
	stats := &entity.Stats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.repo.CountUsers(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TotalArtists, err = s.repo.CountArtists(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TotalClubs, err = s.repo.CountClubs(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TotalEvents, err = s.repo.CountEvents(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.PendingEvents, err = s.repo.CountPendingEvents(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.EventsPerMonth, err = s.repo.EventsPerMonth(gctx, constants.StatsTrailingMonths)
		return
	})
	g.Go(func() (err error) {
		stats.TransactionVolume, err = s.repo.TransactionVolumePerMonth(gctx, constants.StatsTrailingMonths)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return stats, nil
}
