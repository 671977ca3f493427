package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a club night. Events enter the catalog unapproved and only show up in
// public listings after admin approval.
type Event struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Date       time.Time `db:"date" json:"date"`
	Category   string    `db:"category" json:"category"`
	ClubID     uuid.UUID `db:"club_id" json:"club_id"`
	IsApproved bool      `db:"is_approved" json:"is_approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// EventArtist is the booking join row carrying the per-booking fee.
type EventArtist struct {
	EventID  uuid.UUID `db:"event_id" json:"event_id"`
	ArtistID uuid.UUID `db:"artist_id" json:"artist_id"`
	Fee      float64   `db:"fee" json:"fee"`
}

// LineupEntry is an event's booked artist joined with their display name.
type LineupEntry struct {
	ArtistID    uuid.UUID `db:"artist_id" json:"artist_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Fee         float64   `db:"fee" json:"fee"`
}
