package router

import (
	"net/http"

	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes mounts the JSON API under /api. Admin routes carry
// RequireAdmin per route so an unknown path still answers 404.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api")

	api.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &model.LoginRequest{}),
		m.RateLimit.LoginLimiter())
	api.POST("/logout", handler.Handle(h.Auth.Handler, h.Auth.Logout, http.StatusOK, &model.EmptyRequest{}))

	authed := api.Group("", m.Auth.RequireAuth)
	admin := m.Auth.RequireAdmin

	authed.GET("/auth/user", handler.Handle(h.Auth.Handler, h.Auth.CurrentUser, http.StatusOK, &model.EmptyRequest{}))

	registerTimesheetRoutes(authed, h.Timesheet)
	registerWorkPhaseRoutes(authed, h.WorkPhase, admin)
	registerAdminRoutes(authed.Group("/admin"), h.Admin, admin)
}

func registerTimesheetRoutes(g *echo.Group, h *handler.TimesheetHandler) {
	g.GET("/timesheets/:userId/:yearMonth", handler.Handle(h.Handler, h.ListMonth, http.StatusOK, &model.ListTimesheetsRequest{}))
	g.POST("/timesheets", handler.Handle(h.Handler, h.Create, http.StatusCreated, &model.CreateTimesheetRequest{}))
	g.PATCH("/timesheets/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &model.UpdateTimesheetRequest{}))
	g.DELETE("/timesheets/:id", handler.HandleNoContent(h.Handler, h.Delete, http.StatusNoContent, &model.TimesheetIDRequest{}))
}

func registerWorkPhaseRoutes(g *echo.Group, h *handler.WorkPhaseHandler, admin echo.MiddlewareFunc) {
	g.GET("/phases", handler.Handle(h.Handler, h.List, http.StatusOK, &model.EmptyRequest{}))
	g.POST("/phases", handler.Handle(h.Handler, h.Create, http.StatusCreated, &model.CreateWorkPhaseRequest{}), admin)
	g.PATCH("/phases/:id", handler.Handle(h.Handler, h.Update, http.StatusOK, &model.UpdateWorkPhaseRequest{}), admin)
	g.DELETE("/phases/:id", handler.HandleNoContent(h.Handler, h.Delete, http.StatusNoContent, &model.WorkPhaseIDRequest{}), admin)
}

func registerAdminRoutes(g *echo.Group, h *handler.AdminHandler, admin echo.MiddlewareFunc) {
	g.GET("/users", handler.Handle(h.Handler, h.Users, http.StatusOK, &model.EmptyRequest{}), admin)
	g.POST("/users", handler.Handle(h.Handler, h.CreateUser, http.StatusCreated, &model.CreateUserRequest{}), admin)
	g.GET("/employee-hours", handler.Handle(h.Handler, h.EmployeeHours, http.StatusOK, &model.MonthRequest{}), admin)
	g.GET("/phase-hours", handler.Handle(h.Handler, h.PhaseHours, http.StatusOK, &model.MonthRequest{}), admin)
	g.GET("/stats", handler.Handle(h.Handler, h.Stats, http.StatusOK, &model.EmptyRequest{}), admin)
	g.GET("/export", handler.HandleFile(h.Handler, h.Export, http.StatusOK, &model.MonthRequest{}), admin)
	g.POST("/alerts/phase-threshold", handler.Handle(h.Handler, h.TriggerAlert, http.StatusAccepted, &model.EmptyRequest{}), admin)
}
