package service

import (
	"context"
	"testing"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	artistEntity "bebit-api/modules/artist/entity"
	clubEntity "bebit-api/modules/club/entity"
	eventEntity "bebit-api/modules/event/entity"
	"bebit-api/modules/feedback/dto"
	"bebit-api/modules/feedback/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepo struct {
	rows map[uuid.UUID]*entity.Feedback
}

func newFakeFeedbackRepo(rows ...*entity.Feedback) *fakeFeedbackRepo {
	repo := &fakeFeedbackRepo{rows: map[uuid.UUID]*entity.Feedback{}}
	for _, f := range rows {
		repo.rows[f.ID] = f
	}
	return repo
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *entity.Feedback) error {
	feedback.ID = uuid.New()
	r.rows[feedback.ID] = feedback
	return nil
}

func (r *fakeFeedbackRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Feedback, error) {
	return r.rows[id], nil
}

func (r *fakeFeedbackRepo) ListByContext(_ context.Context, contextType string, contextID uuid.UUID, _ int) ([]entity.Feedback, error) {
	var out []entity.Feedback
	for _, f := range r.rows {
		if f.ContextType == contextType && f.ContextID == contextID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) SetReply(_ context.Context, id uuid.UUID, reply string) (*entity.Feedback, error) {
	f, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	f.Reply = &reply
	return f, nil
}

type feedbackFixture struct {
	svc  *FeedbackService
	repo *fakeFeedbackRepo

	event  *eventEntity.Event
	club   *clubEntity.Club
	artist *artistEntity.Artist
}

type stubEventResolver struct{ event *eventEntity.Event }

func (s *stubEventResolver) GetEvent(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	if s.event != nil && s.event.ID == id {
		return s.event, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "Événement introuvable", nil)
}

type stubFbClubResolver struct{ club *clubEntity.Club }

func (s *stubFbClubResolver) GetClub(_ context.Context, id uuid.UUID) (*clubEntity.Club, error) {
	if s.club != nil && s.club.ID == id {
		return s.club, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "Club introuvable", nil)
}

type stubFbArtistResolver struct{ artist *artistEntity.Artist }

func (s *stubFbArtistResolver) GetArtist(_ context.Context, id uuid.UUID) (*artistEntity.Artist, error) {
	if s.artist != nil && s.artist.ID == id {
		return s.artist, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "Artiste introuvable", nil)
}

func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()

	club := &clubEntity.Club{ID: uuid.New(), UserID: uuid.New(), Name: "Le Duplex"}
	artist := &artistEntity.Artist{ID: uuid.New(), UserID: uuid.New(), DisplayName: "DJ Nexa"}
	event := &eventEntity.Event{ID: uuid.New(), ClubID: club.ID, Title: "Halloween Rave", IsApproved: true}

	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo,
		&stubEventResolver{event: event},
		&stubFbClubResolver{club: club},
		&stubFbArtistResolver{artist: artist})

	return &feedbackFixture{svc: svc, repo: repo, event: event, club: club, artist: artist}
}

func fbCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCreateFeedbackSetsReviewerFromSession(t *testing.T) {
	f := newFeedbackFixture(t)
	reviewer := authz.Principal{UserID: uuid.New(), Role: constants.RoleUser}

	fb, err := f.svc.CreateFeedback(context.Background(), reviewer, &dto.CreateFeedbackRequest{
		ContextType: entity.ContextTypeEvent,
		ContextID:   f.event.ID,
		Rating:      5,
		Comment:     "Incroyable",
	})
	require.NoError(t, err)
	assert.Equal(t, reviewer.UserID, fb.ReviewerID)
	assert.Equal(t, entity.ReviewerTypeUser, fb.ReviewerType)
}

func TestCreateFeedbackUnknownContext(t *testing.T) {
	f := newFeedbackFixture(t)
	reviewer := authz.Principal{UserID: uuid.New(), Role: constants.RoleUser}

	_, err := f.svc.CreateFeedback(context.Background(), reviewer, &dto.CreateFeedbackRequest{
		ContextType: entity.ContextTypeArtist,
		ContextID:   uuid.New(),
		Rating:      3,
	})
	assert.Equal(t, errors.ErrNotFound, fbCode(t, err))
}

func TestReplyOnEventFeedbackGoesToOwningClub(t *testing.T) {
	f := newFeedbackFixture(t)
	fb := &entity.Feedback{
		ID:          uuid.New(),
		ContextType: entity.ContextTypeEvent,
		ContextID:   f.event.ID,
		Rating:      4,
	}
	f.repo.rows[fb.ID] = fb

	owner := authz.Principal{UserID: f.club.UserID, Role: constants.RoleClub}
	updated, err := f.svc.Reply(context.Background(), owner, fb.ID, "Merci !")
	require.NoError(t, err)
	require.NotNil(t, updated.Reply)
	assert.Equal(t, "Merci !", *updated.Reply)

	// second reply is refused
	_, err = f.svc.Reply(context.Background(), owner, fb.ID, "Encore merci")
	assert.Equal(t, errors.ErrAlreadyExists, fbCode(t, err))
}

func TestReplyByNonOwnerRefused(t *testing.T) {
	f := newFeedbackFixture(t)
	fb := &entity.Feedback{
		ID:          uuid.New(),
		ContextType: entity.ContextTypeArtist,
		ContextID:   f.artist.ID,
		Rating:      2,
	}
	f.repo.rows[fb.ID] = fb

	stranger := authz.Principal{UserID: uuid.New(), Role: constants.RoleArtist}
	_, err := f.svc.Reply(context.Background(), stranger, fb.ID, "Pas d'accord")
	assert.Equal(t, errors.ErrForbidden, fbCode(t, err))
	assert.Nil(t, fb.Reply)
}
