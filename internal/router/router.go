// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance. authenticator resolves session cookies
// for the protected routes.
func NewRouter(s *server.Server, h *handler.Handlers, authenticator middleware.Authenticator) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, authenticator)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)
	registerAPIRoutes(router, h, middlewares)
	registerAppRoutes(router, s)

	return router
}
