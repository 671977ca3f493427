package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQRCodeOwnerOnly(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{ID: uuid.New(), ClubID: f.club.ID}
	f.repo.events[event.ID] = event

	resp, err := f.svc.EventQRCode(context.Background(), f.clubPrincipal, event.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.QRCode, "data:image/png;base64,"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Payload), &payload))
	assert.Equal(t, "event", payload["type"])
	assert.Equal(t, event.ID.String(), payload["event_id"])

	_, err = f.svc.EventQRCode(context.Background(),
		authz.Principal{UserID: uuid.New(), Role: constants.RoleClub}, event.ID)
	assert.Equal(t, errors.ErrForbidden, eventCode(t, err))
}

func TestTicketQRCode(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{ID: uuid.New(), ClubID: f.club.ID, IsApproved: true}
	f.repo.events[event.ID] = event

	attendee := authz.Principal{UserID: uuid.New(), Role: constants.RoleUser}
	resp, err := f.svc.TicketQRCode(context.Background(), attendee, event.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.QRCode, "data:image/png;base64,"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Payload), &payload))
	assert.Equal(t, "ticket", payload["type"])
	assert.Equal(t, attendee.UserID.String(), payload["user_id"])
	code, _ := payload["code"].(string)
	assert.Len(t, code, constants.TicketCodeLength)
}

func TestTicketQRCodeRequiresApproval(t *testing.T) {
	f := newEventFixture(t)
	event := &entity.Event{ID: uuid.New(), ClubID: f.club.ID, IsApproved: false}
	f.repo.events[event.ID] = event

	_, err := f.svc.TicketQRCode(context.Background(),
		authz.Principal{UserID: uuid.New(), Role: constants.RoleUser}, event.ID)
	assert.Equal(t, errors.ErrNotFound, eventCode(t, err))
}
