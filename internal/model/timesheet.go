package model

import "github.com/deppfellow/timesheet/internal/errs"

// TimesheetType classifies a daily entry.
type TimesheetType string

const (
	TypeWorked   TimesheetType = "LAVORATO"
	TypeSick     TimesheetType = "MALATTIA"
	TypeVacation TimesheetType = "FERIE"
)

// LeaveHours is the fixed length of a sick or vacation day.
const LeaveHours = 8

const (
	MinHours = 1
	MaxHours = 24
)

// IsLeave reports whether t is a fixed-length absence.
func (t TimesheetType) IsLeave() bool {
	return t == TypeSick || t == TypeVacation
}

// Valid reports whether t is a known type.
func (t TimesheetType) Valid() bool {
	switch t {
	case TypeWorked, TypeSick, TypeVacation:
		return true
	}
	return false
}

// Timesheet is one user's entry for one calendar date. Date uses the
// YYYY-MM-DD layout.
type Timesheet struct {
	ID          int           `json:"id" db:"id"`
	UserID      string        `json:"userId" db:"user_id"`
	Date        string        `json:"date" db:"date"`
	Type        TimesheetType `json:"type" db:"type"`
	WorkPhaseID *int          `json:"workPhaseId" db:"work_phase_id"`
	Hours       int           `json:"hours" db:"hours"`
	Base
}

// Normalize enforces the per-type invariants: leave days are always eight
// hours with no phase attached.
func (t *Timesheet) Normalize() {
	if t.Type.IsLeave() {
		t.Hours = LeaveHours
		t.WorkPhaseID = nil
	}
}

// Check reports the field problems of an already normalised entry. Worked
// days need a phase and an hour count in range.
func (t *Timesheet) Check() []errs.FieldError {
	var problems []errs.FieldError

	if !t.Type.Valid() {
		problems = append(problems, errs.FieldError{Field: "type", Error: "must be one of: LAVORATO MALATTIA FERIE"})
		return problems
	}

	if t.Type == TypeWorked && t.WorkPhaseID == nil {
		problems = append(problems, errs.FieldError{Field: "workPhaseId", Error: "is required for worked days"})
	}

	if t.Hours < MinHours || t.Hours > MaxHours {
		problems = append(problems, errs.FieldError{Field: "hours", Error: "must be between 1 and 24"})
	}

	return problems
}
