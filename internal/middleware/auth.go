package middleware

import (
	"net/http"
	"strings"

	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/coworkly/coworking-booking/pkg/auth"
	"github.com/labstack/echo/v4"
)

const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextUserEmail = "user_email"
)

// JWTAuth resolves the caller's identity from a Bearer token and stores it on
// the request context. Downstream code trusts this identity.
func JWTAuth(issuer *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, claims.Sub)
			c.Set(ContextUserRole, claims.Role)
			c.Set(ContextUserEmail, claims.Email)
			return next(c)
		}
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ContextUserRole).(string)
		if role != string(models.RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	}
}

// UserID returns the authenticated caller's id set by JWTAuth.
func UserID(c echo.Context) uint {
	id, _ := c.Get(ContextUserID).(uint)
	return id
}
