package service

import (
	"context"
	"testing"
	"time"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	artistEntity "bebit-api/modules/artist/entity"
	clubEntity "bebit-api/modules/club/entity"
	"bebit-api/modules/event/dto"
	"bebit-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
	links  []entity.EventArtist
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: map[uuid.UUID]*entity.Event{}}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	return r.events[id], nil
}

func (r *fakeEventRepo) List(_ context.Context, _ params.ListQuery) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range r.events {
		if e.IsApproved {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Upcoming(_ context.Context, _ int) ([]entity.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) Pending(_ context.Context) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range r.events {
		if !e.IsApproved {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Approve(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	e.IsApproved = true
	return e, nil
}

func (r *fakeEventRepo) AddArtist(_ context.Context, link *entity.EventArtist) error {
	r.links = append(r.links, *link)
	return nil
}

func (r *fakeEventRepo) Lineup(_ context.Context, eventID uuid.UUID) ([]entity.LineupEntry, error) {
	var out []entity.LineupEntry
	for _, l := range r.links {
		if l.EventID == eventID {
			out = append(out, entity.LineupEntry{ArtistID: l.ArtistID, Fee: l.Fee})
		}
	}
	return out, nil
}

type stubClubResolver struct {
	club *clubEntity.Club
}

func (s *stubClubResolver) GetByUserID(_ context.Context, userID uuid.UUID) (*clubEntity.Club, error) {
	if s.club != nil && s.club.UserID == userID {
		return s.club, nil
	}
	return nil, nil
}

func (s *stubClubResolver) GetClub(_ context.Context, id uuid.UUID) (*clubEntity.Club, error) {
	if s.club != nil && s.club.ID == id {
		return s.club, nil
	}
	return nil, nil
}

type stubArtistResolver struct {
	artist *artistEntity.Artist
}

func (s *stubArtistResolver) GetArtist(_ context.Context, id uuid.UUID) (*artistEntity.Artist, error) {
	if s.artist != nil && s.artist.ID == id {
		return s.artist, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "Artiste introuvable", nil)
}

type eventNotifier struct {
	sent []uuid.UUID
}

func (n *eventNotifier) Notify(_ context.Context, userID uuid.UUID, _, _, _ string, _ map[string]any) error {
	n.sent = append(n.sent, userID)
	return nil
}

type eventFixture struct {
	svc      *EventService
	repo     *fakeEventRepo
	notifier *eventNotifier

	club   *clubEntity.Club
	artist *artistEntity.Artist

	clubPrincipal authz.Principal
}

func newEventFixture(t *testing.T, events ...*entity.Event) *eventFixture {
	t.Helper()

	club := &clubEntity.Club{ID: uuid.New(), UserID: uuid.New(), Name: "Le Duplex"}
	artist := &artistEntity.Artist{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		DisplayName:      "DJ Nexa",
		UnavailableDates: pq.StringArray{"2026-10-31"},
	}

	repo := newFakeEventRepo(events...)
	notifier := &eventNotifier{}
	svc := NewEventService(repo, &stubClubResolver{club: club}, &stubArtistResolver{artist: artist}, notifier)

	return &eventFixture{
		svc:      svc,
		repo:     repo,
		notifier: notifier,
		club:     club,
		artist:   artist,
		clubPrincipal: authz.Principal{
			UserID: club.UserID, Username: "duplex", Role: constants.RoleClub,
		},
	}
}

func eventCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCreateEventStartsUnapproved(t *testing.T) {
	f := newEventFixture(t)

	event, err := f.svc.CreateEvent(context.Background(), f.clubPrincipal, &dto.CreateEventRequest{
		Title:    "Halloween Rave",
		Date:     "2026-10-31",
		Category: "techno",
	})
	require.NoError(t, err)
	assert.False(t, event.IsApproved)
	assert.Equal(t, f.club.ID, event.ClubID)
	assert.Equal(t, "Halloween Rave", event.Title)
	assert.Equal(t, time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), event.Date)
}

func TestCreateEventRequiresClubProfile(t *testing.T) {
	f := newEventFixture(t)

	_, err := f.svc.CreateEvent(context.Background(),
		authz.Principal{UserID: uuid.New(), Role: constants.RoleClub},
		&dto.CreateEventRequest{Title: "x", Date: "2026-10-31", Category: "techno"})
	assert.Equal(t, errors.ErrForbidden, eventCode(t, err))
}

func TestCreateEventBadDate(t *testing.T) {
	f := newEventFixture(t)

	_, err := f.svc.CreateEvent(context.Background(), f.clubPrincipal,
		&dto.CreateEventRequest{Title: "x", Date: "31/10/2026", Category: "techno"})
	assert.Equal(t, errors.ErrInvalidInput, eventCode(t, err))
}

func TestAddArtist(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{
		ID:     uuid.New(),
		ClubID: f.club.ID,
		Date:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	f.repo.events[event.ID] = event

	link, err := f.svc.AddArtist(context.Background(), f.clubPrincipal, event.ID,
		&dto.AddEventArtistRequest{ArtistID: f.artist.ID, Fee: 500})
	require.NoError(t, err)
	assert.Equal(t, f.artist.ID, link.ArtistID)
	assert.Equal(t, 500.0, link.Fee)
	assert.Len(t, f.repo.links, 1)
}

func TestAddArtistUnavailableDate(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{
		ID:     uuid.New(),
		ClubID: f.club.ID,
		Date:   time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
	}
	f.repo.events[event.ID] = event

	_, err := f.svc.AddArtist(context.Background(), f.clubPrincipal, event.ID,
		&dto.AddEventArtistRequest{ArtistID: f.artist.ID, Fee: 500})
	assert.Equal(t, errors.ErrInvalidInput, eventCode(t, err))
	assert.Empty(t, f.repo.links)
}

func TestAddArtistOnForeignEvent(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{
		ID:     uuid.New(),
		ClubID: uuid.New(), // someone else's event
		Date:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	f.repo.events[event.ID] = event

	_, err := f.svc.AddArtist(context.Background(), f.clubPrincipal, event.ID,
		&dto.AddEventArtistRequest{ArtistID: f.artist.ID})
	assert.Equal(t, errors.ErrForbidden, eventCode(t, err))
}

func TestApproveEventNotifiesClub(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{ID: uuid.New(), ClubID: f.club.ID, Title: "Halloween Rave"}
	f.repo.events[event.ID] = event

	approved, err := f.svc.ApproveEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
	assert.Equal(t, []uuid.UUID{f.club.UserID}, f.notifier.sent)
}

func TestApproveUnknownEvent(t *testing.T) {
	f := newEventFixture(t)

	_, err := f.svc.ApproveEvent(context.Background(), uuid.New())
	assert.Equal(t, errors.ErrNotFound, eventCode(t, err))
}
