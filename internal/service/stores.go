package service

import (
	"context"
	"time"

	"github.com/deppfellow/timesheet/internal/model"
)

// The services depend on these narrow views of the repositories so they can
// be exercised with in-memory fakes.

type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByAccessCode(ctx context.Context, accessCode string) (*model.User, error)
	ListEmployees(ctx context.Context) ([]model.User, error)
	CountEmployees(ctx context.Context) (int, error)
	Create(ctx context.Context, u *model.User) error
	CreateIfMissing(ctx context.Context, u *model.User) (bool, error)
}

type WorkPhaseStore interface {
	List(ctx context.Context) ([]model.WorkPhase, error)
	GetByID(ctx context.Context, id int) (*model.WorkPhase, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *model.WorkPhase) error
	CreateIfMissing(ctx context.Context, p *model.WorkPhase) (bool, error)
	Update(ctx context.Context, p *model.WorkPhase) error
	Delete(ctx context.Context, id int) error
}

type TimesheetStore interface {
	ListByUserBetween(ctx context.Context, userID, from, to string) ([]model.Timesheet, error)
	GetByID(ctx context.Context, id int) (*model.Timesheet, error)
	GetByUserAndDate(ctx context.Context, userID, date string) (*model.Timesheet, error)
	Create(ctx context.Context, t *model.Timesheet) error
	Update(ctx context.Context, t *model.Timesheet) error
	Delete(ctx context.Context, id int) error
}

type ReportStore interface {
	SumWorkedByUserPhase(ctx context.Context, from, to *string) ([]model.UserPhaseSum, error)
	SumWorkedByPhase(ctx context.Context, from, to *string) (map[int]int, error)
	CountActiveOn(ctx context.Context, date string) (int, error)
	SumHoursBetween(ctx context.Context, from, to string) (int, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *model.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
