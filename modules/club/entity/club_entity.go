package entity

import (
	"time"

	"github.com/google/uuid"
)

// Club is the venue profile, 1:1 with a users row of role club.
type Club struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Rating    float64   `db:"rating" json:"rating"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
