package service

import (
	"context"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/lib/utils"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
)

var (
	codeTimesheetExists = "TIMESHEET_ALREADY_EXISTS"
	codeUnknownPhase    = "WORK_PHASE_NOT_FOUND"
)

type TimesheetService struct {
	timesheets TimesheetStore
	phases     WorkPhaseStore
}

func NewTimesheetService(timesheets TimesheetStore, phases WorkPhaseStore) *TimesheetService {
	return &TimesheetService{
		timesheets: timesheets,
		phases:     phases,
	}
}

// ListMonth returns userID's entries of yearMonth, newest first. Only the
// owner and administrators may read them.
func (s *TimesheetService) ListMonth(ctx context.Context, actor Actor, userID, yearMonth string) ([]model.Timesheet, error) {
	if !actor.CanRead(userID) {
		return nil, errs.NewForbiddenError("You can only view your own timesheets", true)
	}

	from, to, err := utils.MonthRange(yearMonth)
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid month, expected YYYY-MM", true, nil,
			[]errs.FieldError{{Field: "yearMonth", Error: "must be a month in YYYY-MM format"}}, nil)
	}

	return s.timesheets.ListByUserBetween(ctx, userID, from, to)
}

// Create records the caller's entry for a date that has none yet.
func (s *TimesheetService) Create(ctx context.Context, actor Actor, req *model.CreateTimesheetRequest) (*model.Timesheet, error) {
	if req.UserID != actor.UserID {
		return nil, errs.NewForbiddenError("You can only create your own timesheets", true)
	}

	timesheet := req.Timesheet()
	if err := s.check(ctx, timesheet); err != nil {
		return nil, err
	}

	if err := s.ensureDateFree(ctx, timesheet.UserID, timesheet.Date); err != nil {
		return nil, err
	}

	if err := s.timesheets.Create(ctx, timesheet); err != nil {
		return nil, err
	}
	return timesheet, nil
}

// Update merges the partial request onto the caller's entry and validates
// the result like a new one.
func (s *TimesheetService) Update(ctx context.Context, actor Actor, req *model.UpdateTimesheetRequest) (*model.Timesheet, error) {
	existing, err := s.owned(ctx, actor, req.ID)
	if err != nil {
		return nil, err
	}

	merged := req.Apply(*existing)
	if err := s.check(ctx, merged); err != nil {
		return nil, err
	}

	if merged.Date != existing.Date {
		if err := s.ensureDateFree(ctx, merged.UserID, merged.Date); err != nil {
			return nil, err
		}
	}

	if err := s.timesheets.Update(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete removes the caller's entry.
func (s *TimesheetService) Delete(ctx context.Context, actor Actor, id int) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	return s.timesheets.Delete(ctx, id)
}

// owned loads entry id and makes sure actor owns it.
func (s *TimesheetService) owned(ctx context.Context, actor Actor, id int) (*model.Timesheet, error) {
	timesheet, err := s.timesheets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if timesheet.UserID != actor.UserID {
		return nil, errs.NewForbiddenError("You can only change your own timesheets", true)
	}
	return timesheet, nil
}

// check validates a normalised entry and the phase it references.
func (s *TimesheetService) check(ctx context.Context, timesheet *model.Timesheet) error {
	if problems := timesheet.Check(); len(problems) > 0 {
		return errs.NewBadRequestError("Validation failed", true, nil, problems, nil)
	}

	if timesheet.WorkPhaseID == nil {
		return nil
	}

	if _, err := s.phases.GetByID(ctx, *timesheet.WorkPhaseID); err != nil {
		if sqlerr.IsNotFound(err) {
			return errs.NewBadRequestError("The selected work phase does not exist", true, &codeUnknownPhase,
				[]errs.FieldError{{Field: "workPhaseId", Error: "does not exist"}}, nil)
		}
		return err
	}
	return nil
}

func (s *TimesheetService) ensureDateFree(ctx context.Context, userID, date string) error {
	_, err := s.timesheets.GetByUserAndDate(ctx, userID, date)
	switch {
	case err == nil:
		return errs.NewConflictError("A timesheet already exists for this date", true, &codeTimesheetExists)
	case sqlerr.IsNotFound(err):
		return nil
	default:
		return err
	}
}
