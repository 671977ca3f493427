package middleware

import (
	"net/http"
	"strings"

	"bebit-api/core/cache"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	"bebit-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache *cache.Cache
}

func NewMiddleware(cache *cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware rejects requests without a valid, non-revoked access token and
// stores the parsed claims under "token_data".
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "Authentification requise")
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "Format de jeton invalide")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:Auth:Blacklist:Error", err)
					return controller.NewErrorResponse(http.StatusInternalServerError,
						errors.ErrInternalServer, "Erreur interne du serveur")
				}
				if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrUnauthorized, "Session expirée")
				}
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "Jeton invalide ou expiré")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "Jeton invalide ou expiré")
			}

			c.Set("token_data", claims)
			c.Set("token_raw", token)
			return next(c)
		}
	}
}

// RequireRole gates a route group on the session role. Runs after AuthMiddleware.
func (m *Middleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData := c.Get("token_data")
			claims, ok := tokenData.(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "Authentification requise")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return controller.NewErrorResponse(http.StatusForbidden,
				errors.ErrForbidden, "Accès refusé")
		}
	}
}
