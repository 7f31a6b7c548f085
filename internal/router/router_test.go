package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/timesheet/internal/config"
	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(_ context.Context, sessionID string) (*model.User, error) {
	switch sessionID {
	case "employee":
		return &model.User{ID: "u-1"}, nil
	case "admin":
		return &model.User{ID: "u-admin", IsAdmin: true}, nil
	}
	return nil, errs.NewSessionExpiredError()
}

func newTestRouter(t *testing.T, staticDir string) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Enabled = false

	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"http://localhost:5173"},
				StaticDir:          staticDir,
			},
			Auth: config.AuthConfig{
				SessionTTL:     time.Hour,
				CookieName:     "timesheet_session",
				LoginRateLimit: 10,
			},
			Observability: obs,
		},
		Logger: &logger,
	}

	h := &handler.Handlers{
		Health:    handler.NewHealthHandler(s),
		Auth:      handler.NewAuthHandler(s, nil),
		Timesheet: handler.NewTimesheetHandler(s, nil),
		WorkPhase: handler.NewWorkPhaseHandler(s, nil),
		Admin:     handler.NewAdminHandler(s, nil, nil),
	}

	return NewRouter(s, h, stubAuthenticator{})
}

func do(r *echo.Echo, method, target, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "timesheet_session", Value: session})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestStatusIsPublic(t *testing.T) {
	t.Parallel()

	rec := do(newTestRouter(t, ""), http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPIRequiresSession(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, "")

	rec := do(r, http.MethodGet, "/api/phases", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(r, http.MethodGet, "/api/timesheets/u-1/2024-05", "expired")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"redirect"`)
}

func TestAdminRoutesRejectEmployees(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/export"},
		{http.MethodPost, "/api/phases"},
		{http.MethodDelete, "/api/phases/1"},
		{http.MethodPost, "/api/admin/alerts/phase-threshold"},
	} {
		rec := do(r, route.method, route.path, "employee")
		require.Equal(t, http.StatusForbidden, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestUnknownAPIRouteIsNotFound(t *testing.T) {
	t.Parallel()

	rec := do(newTestRouter(t, ""), http.MethodGet, "/api/nothing-here", "employee")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientRoutesFallBackToIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=root></div>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	r := newTestRouter(t, dir)

	rec := do(r, http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "console.log(1)", rec.Body.String())

	rec = do(r, http.MethodGet, "/admin/phases", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "root")

	rec = do(r, http.MethodGet, "/api/nothing-here", "")
	require.NotContains(t, rec.Body.String(), "root")
}
