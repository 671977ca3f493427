package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reviewer and context discriminators.
const (
	ReviewerTypeUser   = "user"
	ReviewerTypeArtist = "artist"
	ReviewerTypeClub   = "club"

	ContextTypeEvent  = "event"
	ContextTypeArtist = "artist"
	ContextTypeClub   = "club"
)

// Feedback is a rated review left against an event, artist, or club, optionally
// answered once by the reviewed party.
type Feedback struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ReviewerID   uuid.UUID `db:"reviewer_id" json:"reviewer_id"`
	ReviewerType string    `db:"reviewer_type" json:"reviewer_type"`
	ContextID    uuid.UUID `db:"context_id" json:"context_id"`
	ContextType  string    `db:"context_type" json:"context_type"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	Reply        *string   `db:"reply" json:"reply"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
