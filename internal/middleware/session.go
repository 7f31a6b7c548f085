package middleware

import (
	"net/http"

	"github.com/deppfellow/timesheet/internal/config"
	"github.com/labstack/echo/v4"
)

// SessionID returns the value of the session cookie, empty when absent.
func SessionID(c echo.Context, cookieName string) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie issues the HttpOnly session cookie, valid for one session
// TTL from now.
func SetSessionCookie(c echo.Context, cfg *config.Config, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(cfg.Auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     cfg.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
