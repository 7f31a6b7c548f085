// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// requests from the handlers, enforces ownership and per-type rules, and
// calls the repositories.
package service

import (
	"time"

	"github.com/deppfellow/timesheet/internal/lib/job"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/server"
)

type Services struct {
	Auth      *AuthService
	Timesheet *TimesheetService
	WorkPhase *WorkPhaseService
	Admin     *AdminService
	Seed      *SeedService
	Job       *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, repos.Session, s.Config.Auth.SessionTTL),
		Timesheet: NewTimesheetService(repos.Timesheet, repos.WorkPhase),
		WorkPhase: NewWorkPhaseService(repos.WorkPhase),
		Admin:     NewAdminService(repos.User, repos.WorkPhase, repos.Report, s.Config.Primary.Location(), time.Now),
		Seed:      NewSeedService(repos.User, repos.WorkPhase, s.Logger),
		Job:       s.Job,
	}
}
