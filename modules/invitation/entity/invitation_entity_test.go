package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvitationStatusValid(t *testing.T) {
	assert.True(t, InvitationStatusPending.Valid())
	assert.True(t, InvitationStatusConfirmed.Valid())
	assert.True(t, InvitationStatusDeclined.Valid())
	assert.True(t, InvitationStatusCancelled.Valid())
	assert.False(t, InvitationStatus("accepted").Valid())
	assert.False(t, InvitationStatus("").Valid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from InvitationStatus
		to   InvitationStatus
		want bool
	}{
		{InvitationStatusPending, InvitationStatusConfirmed, true},
		{InvitationStatusPending, InvitationStatusDeclined, true},
		{InvitationStatusPending, InvitationStatusCancelled, true},
		{InvitationStatusConfirmed, InvitationStatusCancelled, true},
		{InvitationStatusConfirmed, InvitationStatusDeclined, false},
		{InvitationStatusConfirmed, InvitationStatusPending, false},
		{InvitationStatusDeclined, InvitationStatusConfirmed, false},
		{InvitationStatusDeclined, InvitationStatusCancelled, false},
		{InvitationStatusCancelled, InvitationStatusConfirmed, false},
		{InvitationStatusCancelled, InvitationStatusPending, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}
