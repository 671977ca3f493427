package authz

import (
	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Principal is the authenticated caller, extracted once from the request context
// and handed to the ownership predicates below. Handlers never re-implement
// ownership checks inline.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

// FromContext reads the principal stored by the auth middleware.
func FromContext(c echo.Context) (Principal, error) {
	tokenData := c.Get("token_data")
	if tokenData == nil {
		return Principal{}, errors.NewAppError(errors.ErrUnauthorized, "Session introuvable", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return Principal{}, errors.NewAppError(errors.ErrUnauthorized, "Session invalide", nil)
	}

	return Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == constants.RoleAdmin
}

// IsSelf reports whether the principal is the given user. Admins pass.
func (p Principal) IsSelf(userID uuid.UUID) bool {
	return p.UserID == userID || p.IsAdmin()
}

// OwnsProfile reports whether the principal owns an artist or club profile, given
// the profile's user_id. Admins do not pass: profile mutations stay with the owner.
func (p Principal) OwnsProfile(profileUserID uuid.UUID) bool {
	return p.UserID == profileUserID
}

func (p Principal) HasRole(roles ...string) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}
