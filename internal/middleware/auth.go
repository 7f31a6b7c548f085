package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
)

// Authenticator resolves a session id to its user, refreshing the session.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*model.User, error)
}

// AuthMiddleware enforces cookie sessions on the API routes.
type AuthMiddleware struct {
	server *server.Server
	auth   Authenticator
}

func NewAuthMiddleware(s *server.Server, auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth loads the session named by the session cookie, stores the user
// in the request context and re-issues the cookie so its expiry slides with
// the server-side session.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		sessionID := SessionID(c, auth.server.Config.Auth.CookieName)

		user, err := auth.auth.Authenticate(c.Request().Context(), sessionID)
		if err != nil {
			var httpErr *errs.HTTPError
			if errors.As(err, &httpErr) && httpErr.Status == http.StatusUnauthorized && sessionID != "" {
				ClearSessionCookie(c, auth.server.Config)
			}

			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("request not authenticated")
			return err
		}

		setUser(c, user)
		SetSessionCookie(c, auth.server.Config, sessionID)

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

// RequireAdmin rejects non-admin users. It must run after RequireAuth.
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := GetUser(c)
		if user == nil {
			return errs.NewUnauthorizedError("Not authenticated", true)
		}
		if !user.IsAdmin {
			return errs.NewForbiddenError("Admin access required", true)
		}
		return next(c)
	}
}
