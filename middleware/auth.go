package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/summer0102/real-estate-showcase/services"
	"github.com/summer0102/real-estate-showcase/utils"
)

// AdminAuthMiddleware gates admin routes on a bearer token bound to a
// server-side session. The token alone is not enough: the session record
// must still exist in the store and be within its max age, so logout
// revokes access immediately.
func AdminAuthMiddleware(sessions *services.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Authorization header is required",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid authorization header format",
				})
			}

			claims, err := utils.ValidateSessionToken(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Invalid token",
				})
			}

			session, ok, err := sessions.Load(c.Request().Context(), claims.SessionID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "Failed to load session",
				})
			}
			if !ok || !session.Authenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Session expired",
				})
			}

			c.Set("session_id", claims.SessionID)

			return next(c)
		}
	}
}
