// Package repository handles all interactions with PostgreSQL and Redis.
//
// It contains the raw SQL queries and the session store, abstracting storage
// away from the service layer. Missing rows are reported with
// sqlerr.NotFound so the error handler can name the entity.
package repository

import (
	"github.com/deppfellow/timesheet/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User      *UserRepository
	WorkPhase *WorkPhaseRepository
	Timesheet *TimesheetRepository
	Report    *ReportRepository
	Session   *SessionRepository
}

// NewRepositories builds every repository on the server's pool and Redis
// client.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:      NewUserRepository(s.DB.Pool),
		WorkPhase: NewWorkPhaseRepository(s.DB.Pool),
		Timesheet: NewTimesheetRepository(s.DB.Pool),
		Report:    NewReportRepository(s.DB.Pool),
		Session:   NewSessionRepository(s.Redis),
	}
}
