package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Artist is the performer profile, 1:1 with a users row of role artist.
// UnavailableDates holds ISO dates (YYYY-MM-DD) the artist cannot be booked.
type Artist struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	UserID           uuid.UUID      `db:"user_id" json:"user_id"`
	DisplayName      string         `db:"display_name" json:"display_name"`
	Genres           pq.StringArray `db:"genres" json:"genres"`
	Bio              string         `db:"bio" json:"bio"`
	Rate             float64        `db:"rate" json:"rate"`
	Popularity       int            `db:"popularity" json:"popularity"`
	UnavailableDates pq.StringArray `db:"unavailable_dates" json:"unavailable_dates"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}
