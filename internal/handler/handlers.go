package handler

import (
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Timesheet *TimesheetHandler
	WorkPhase *WorkPhaseHandler
	Admin     *AdminHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	var alerts AlertEnqueuer
	if services.Job != nil {
		alerts = services.Job
	}

	return &Handlers{
		Health:    NewHealthHandler(s),
		Auth:      NewAuthHandler(s, services.Auth),
		Timesheet: NewTimesheetHandler(s, services.Timesheet),
		WorkPhase: NewWorkPhaseHandler(s, services.WorkPhase),
		Admin:     NewAdminHandler(s, services.Admin, alerts),
	}
}
