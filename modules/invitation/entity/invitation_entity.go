package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending   InvitationStatus = "pending"
	InvitationStatusConfirmed InvitationStatus = "confirmed"
	InvitationStatusDeclined  InvitationStatus = "declined"
	InvitationStatusCancelled InvitationStatus = "cancelled"
)

// transitions is the closed set of allowed status changes. Declined and cancelled
// are terminal.
var transitions = map[InvitationStatus][]InvitationStatus{
	InvitationStatusPending:   {InvitationStatusConfirmed, InvitationStatusDeclined, InvitationStatusCancelled},
	InvitationStatusConfirmed: {InvitationStatusCancelled},
	InvitationStatusDeclined:  {},
	InvitationStatusCancelled: {},
}

func (s InvitationStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s InvitationStatus) CanTransitionTo(to InvitationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Invitation is a club's booking proposal to an artist.
type Invitation struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	ClubID      uuid.UUID        `db:"club_id" json:"club_id"`
	ArtistID    uuid.UUID        `db:"artist_id" json:"artist_id"`
	Status      InvitationStatus `db:"status" json:"status"`
	RespondedAt *time.Time       `db:"responded_at" json:"responded_at"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}
