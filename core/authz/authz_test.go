package authz

import (
	"testing"

	"bebit-api/core/constants"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsSelf(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		p      Principal
		target uuid.UUID
		want   bool
	}{
		{"own account", Principal{UserID: me, Role: constants.RoleUser}, me, true},
		{"other account", Principal{UserID: me, Role: constants.RoleUser}, other, false},
		{"admin on other account", Principal{UserID: me, Role: constants.RoleAdmin}, other, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.IsSelf(tc.target))
		})
	}
}

func TestOwnsProfile(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	tests := []struct {
		name   string
		p      Principal
		target uuid.UUID
		want   bool
	}{
		{"own profile", Principal{UserID: me, Role: constants.RoleArtist}, me, true},
		{"other profile", Principal{UserID: me, Role: constants.RoleArtist}, other, false},
		// profile mutations stay with the owner even for admins
		{"admin on other profile", Principal{UserID: me, Role: constants.RoleAdmin}, other, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.OwnsProfile(tc.target))
		})
	}
}

func TestHasRole(t *testing.T) {
	p := Principal{Role: constants.RoleClub}

	assert.True(t, p.HasRole(constants.RoleClub))
	assert.True(t, p.HasRole(constants.RoleArtist, constants.RoleClub))
	assert.False(t, p.HasRole(constants.RoleArtist))
	assert.False(t, p.HasRole())
}
