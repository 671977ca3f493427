package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account row. Password never serializes: the json tag strips it from
// every response.
type User struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Password   string    `db:"password" json:"-"`
	Role       string    `db:"role" json:"role"`
	IsVerified bool      `db:"is_verified" json:"is_verified"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
