package router

import (
	"strings"

	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// registerSystemRoutes registers endpoints outside the business API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}

// registerAppRoutes serves the pre-built browser client. Unknown paths
// outside /api fall back to index.html so client-side routes survive a
// reload.
func registerAppRoutes(r *echo.Echo, s *server.Server) {
	dir := s.Config.Server.StaticDir
	if dir == "" {
		return
	}

	r.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
		Root:  dir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api/") || p == "/api" || p == "/status"
		},
	}))
}
