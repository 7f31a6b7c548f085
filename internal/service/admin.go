package service

import (
	"context"
	"math"
	"time"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/lib/report"
	"github.com/deppfellow/timesheet/internal/lib/utils"
	"github.com/deppfellow/timesheet/internal/model"
)

// AdminService computes the read-only aggregations of the admin area.
// Aggregations are all time unless a "YYYY-MM" month narrows them.
type AdminService struct {
	users   UserStore
	phases  WorkPhaseStore
	reports ReportStore
	loc     *time.Location
	now     func() time.Time
}

func NewAdminService(users UserStore, phases WorkPhaseStore, reports ReportStore, loc *time.Location, now func() time.Time) *AdminService {
	return &AdminService{
		users:   users,
		phases:  phases,
		reports: reports,
		loc:     loc,
		now:     now,
	}
}

// Users lists the employees (non-admin accounts) by full name.
func (s *AdminService) Users(ctx context.Context) ([]model.User, error) {
	return s.users.ListEmployees(ctx)
}

// CreateUser adds an account. A reused access code fails with 409.
func (s *AdminService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user := req.User()
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// EmployeeHours reports the worked hours of every employee.
func (s *AdminService) EmployeeHours(ctx context.Context, month *string) ([]model.EmployeeHours, error) {
	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	phases, err := s.phases.List(ctx)
	if err != nil {
		return nil, err
	}
	sums, err := s.reports.SumWorkedByUserPhase(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return AssembleEmployeeHours(users, phases, sums), nil
}

// PhaseHours reports every phase against its threshold.
func (s *AdminService) PhaseHours(ctx context.Context, month *string) ([]model.PhaseTotal, error) {
	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	phases, err := s.phases.List(ctx)
	if err != nil {
		return nil, err
	}
	sums, err := s.reports.SumWorkedByPhase(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return AssemblePhaseTotals(phases, sums), nil
}

// Stats computes the dashboard counters. "Today" and "this month" are taken
// in the configured time zone.
func (s *AdminService) Stats(ctx context.Context) (*model.AdminStats, error) {
	now := s.now()

	from, to, err := utils.MonthRange(utils.CurrentMonth(now, s.loc))
	if err != nil {
		return nil, err
	}

	var stats model.AdminStats

	if stats.TotalEmployees, err = s.users.CountEmployees(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveToday, err = s.reports.CountActiveOn(ctx, utils.Today(now, s.loc)); err != nil {
		return nil, err
	}
	if stats.TotalHoursThisMonth, err = s.reports.SumHoursBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if stats.PhasesCount, err = s.phases.Count(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Export renders EmployeeHours and PhaseHours as an XLSX workbook.
func (s *AdminService) Export(ctx context.Context, month *string) ([]byte, error) {
	employees, err := s.EmployeeHours(ctx, month)
	if err != nil {
		return nil, err
	}
	phases, err := s.PhaseHours(ctx, month)
	if err != nil {
		return nil, err
	}
	return report.Build(employees, phases)
}

func monthBounds(month *string) (from, to *string, err error) {
	if month == nil {
		return nil, nil, nil
	}

	start, end, err := utils.MonthRange(*month)
	if err != nil {
		return nil, nil, errs.NewBadRequestError("Invalid month, expected YYYY-MM", true, nil,
			[]errs.FieldError{{Field: "month", Error: "must be a month in YYYY-MM format"}}, nil)
	}
	return &start, &end, nil
}

// AssembleEmployeeHours joins the per (user, phase) sums onto the employee
// list. Every employee appears, with zero hours and no phases when idle.
// Hours of deleted phases count in the total but are not listed.
func AssembleEmployeeHours(users []model.User, phases []model.WorkPhase, sums []model.UserPhaseSum) []model.EmployeeHours {
	byUser := make(map[string][]model.UserPhaseSum, len(users))
	for _, sum := range sums {
		byUser[sum.UserID] = append(byUser[sum.UserID], sum)
	}

	result := make([]model.EmployeeHours, 0, len(users))
	for _, user := range users {
		entry := model.EmployeeHours{
			User:   user,
			Phases: []model.PhaseHours{},
		}

		perPhase := map[int]int{}
		for _, sum := range byUser[user.ID] {
			entry.TotalHours += sum.Hours
			if sum.PhaseID != nil {
				perPhase[*sum.PhaseID] += sum.Hours
			}
		}

		// catalog order keeps the phase list sorted by code
		for _, phase := range phases {
			if hours, ok := perPhase[phase.ID]; ok {
				entry.Phases = append(entry.Phases, model.PhaseHours{
					PhaseID: phase.ID,
					Phase:   phase,
					Hours:   hours,
				})
			}
		}

		result = append(result, entry)
	}

	return result
}

// AssemblePhaseTotals compares each phase's worked hours with its
// threshold. A phase is exceeded once its total reaches the threshold.
func AssemblePhaseTotals(phases []model.WorkPhase, sums map[int]int) []model.PhaseTotal {
	result := make([]model.PhaseTotal, 0, len(phases))
	for _, phase := range phases {
		total := sums[phase.ID]

		var percent float64
		if phase.HourThreshold > 0 {
			percent = math.Round(float64(total)*1000/float64(phase.HourThreshold)) / 10
		}

		result = append(result, model.PhaseTotal{
			Phase:       phase,
			TotalHours:  total,
			Threshold:   phase.HourThreshold,
			PercentUsed: percent,
			Exceeded:    phase.HourThreshold > 0 && total >= phase.HourThreshold,
		})
	}
	return result
}
