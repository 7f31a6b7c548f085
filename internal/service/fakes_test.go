package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/sqlerr"
)

type fakeUsers struct {
	byID map[string]*model.User
	seq  int
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*model.User{}}
	for i := range users {
		u := users[i]
		f.byID[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, sqlerr.NotFound("users")
}

func (f *fakeUsers) GetByAccessCode(_ context.Context, code string) (*model.User, error) {
	for _, u := range f.byID {
		if u.AccessCode == code {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sqlerr.NotFound("users")
}

func (f *fakeUsers) ListEmployees(context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, u := range f.byID {
		if !u.IsAdmin {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].FullName < users[j].FullName })
	return users, nil
}

func (f *fakeUsers) CountEmployees(ctx context.Context) (int, error) {
	users, _ := f.ListEmployees(ctx)
	return len(users), nil
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.seq++
	u.ID = fmt.Sprintf("generated-%d", f.seq)
	copied := *u
	f.byID[u.ID] = &copied
	return nil
}

func (f *fakeUsers) CreateIfMissing(ctx context.Context, u *model.User) (bool, error) {
	if _, err := f.GetByAccessCode(ctx, u.AccessCode); err == nil {
		return false, nil
	}
	return true, f.Create(ctx, u)
}

type fakePhases struct {
	byID map[int]*model.WorkPhase
	seq  int
}

func newFakePhases(phases ...model.WorkPhase) *fakePhases {
	f := &fakePhases{byID: map[int]*model.WorkPhase{}}
	for i := range phases {
		p := phases[i]
		f.byID[p.ID] = &p
		if p.ID > f.seq {
			f.seq = p.ID
		}
	}
	return f
}

func (f *fakePhases) List(context.Context) ([]model.WorkPhase, error) {
	phases := []model.WorkPhase{}
	for _, p := range f.byID {
		phases = append(phases, *p)
	}
	sort.Slice(phases, func(i, j int) bool { return phases[i].Code < phases[j].Code })
	return phases, nil
}

func (f *fakePhases) GetByID(_ context.Context, id int) (*model.WorkPhase, error) {
	if p, ok := f.byID[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, sqlerr.NotFound("work_phases")
}

func (f *fakePhases) Count(context.Context) (int, error) {
	return len(f.byID), nil
}

func (f *fakePhases) Create(_ context.Context, p *model.WorkPhase) error {
	f.seq++
	p.ID = f.seq
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakePhases) CreateIfMissing(ctx context.Context, p *model.WorkPhase) (bool, error) {
	for _, existing := range f.byID {
		if existing.Code == p.Code {
			return false, nil
		}
	}
	return true, f.Create(ctx, p)
}

func (f *fakePhases) Update(_ context.Context, p *model.WorkPhase) error {
	if _, ok := f.byID[p.ID]; !ok {
		return sqlerr.NotFound("work_phases")
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func (f *fakePhases) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return sqlerr.NotFound("work_phases")
	}
	delete(f.byID, id)
	return nil
}

type fakeTimesheets struct {
	byID map[int]*model.Timesheet
	seq  int
}

func newFakeTimesheets(timesheets ...model.Timesheet) *fakeTimesheets {
	f := &fakeTimesheets{byID: map[int]*model.Timesheet{}}
	for i := range timesheets {
		t := timesheets[i]
		f.byID[t.ID] = &t
		if t.ID > f.seq {
			f.seq = t.ID
		}
	}
	return f
}

func (f *fakeTimesheets) ListByUserBetween(_ context.Context, userID, from, to string) ([]model.Timesheet, error) {
	result := []model.Timesheet{}
	for _, t := range f.byID {
		if t.UserID == userID && t.Date >= from && t.Date < to {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	return result, nil
}

func (f *fakeTimesheets) GetByID(_ context.Context, id int) (*model.Timesheet, error) {
	if t, ok := f.byID[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, sqlerr.NotFound("timesheets")
}

func (f *fakeTimesheets) GetByUserAndDate(_ context.Context, userID, date string) (*model.Timesheet, error) {
	for _, t := range f.byID {
		if t.UserID == userID && t.Date == date {
			copied := *t
			return &copied, nil
		}
	}
	return nil, sqlerr.NotFound("timesheets")
}

func (f *fakeTimesheets) Create(_ context.Context, t *model.Timesheet) error {
	f.seq++
	t.ID = f.seq
	copied := *t
	f.byID[t.ID] = &copied
	return nil
}

func (f *fakeTimesheets) Update(_ context.Context, t *model.Timesheet) error {
	if _, ok := f.byID[t.ID]; !ok {
		return sqlerr.NotFound("timesheets")
	}
	copied := *t
	f.byID[t.ID] = &copied
	return nil
}

func (f *fakeTimesheets) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return sqlerr.NotFound("timesheets")
	}
	delete(f.byID, id)
	return nil
}

type fakeReports struct {
	userPhase   []model.UserPhaseSum
	byPhase     map[int]int
	activeOn    map[string]int
	hoursBetw   int
	lastFrom    *string
	lastTo      *string
	lastBetween [2]string
}

func (f *fakeReports) SumWorkedByUserPhase(_ context.Context, from, to *string) ([]model.UserPhaseSum, error) {
	f.lastFrom, f.lastTo = from, to
	return f.userPhase, nil
}

func (f *fakeReports) SumWorkedByPhase(_ context.Context, from, to *string) (map[int]int, error) {
	f.lastFrom, f.lastTo = from, to
	return f.byPhase, nil
}

func (f *fakeReports) CountActiveOn(_ context.Context, date string) (int, error) {
	return f.activeOn[date], nil
}

func (f *fakeReports) SumHoursBetween(_ context.Context, from, to string) (int, error) {
	f.lastBetween = [2]string{from, to}
	return f.hoursBetw, nil
}

type fakeSessions struct {
	byID    map[string]model.Session
	touched map[string]time.Duration
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: map[string]model.Session{}, touched: map[string]time.Duration{}}
}

func (f *fakeSessions) Create(_ context.Context, s *model.Session, ttl time.Duration) error {
	f.byID[s.ID] = *s
	f.touched[s.ID] = ttl
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*model.Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessions) Touch(_ context.Context, id string, ttl time.Duration) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrSessionNotFound
	}
	f.touched[id] = ttl
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}
