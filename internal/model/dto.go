package model

import (
	"strings"

	"github.com/deppfellow/timesheet/internal/validation"
)

// ------------------------------------------------------------

type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// ------------------------------------------------------------

type LoginRequest struct {
	AccessCode string `json:"accessCode" validate:"required,max=200"`
}

func (r *LoginRequest) Validate() error {
	r.AccessCode = strings.TrimSpace(r.AccessCode)
	return validation.Struct(r)
}

// ------------------------------------------------------------

type ListTimesheetsRequest struct {
	UserID    string `param:"userId" validate:"required,uuid"`
	YearMonth string `param:"yearMonth" validate:"required,yearmonth"`
}

func (r *ListTimesheetsRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type CreateTimesheetRequest struct {
	UserID      string        `json:"userId" validate:"required,uuid"`
	Date        string        `json:"date" validate:"required,isodate"`
	Type        TimesheetType `json:"type" validate:"required,oneof=LAVORATO MALATTIA FERIE"`
	WorkPhaseID *int          `json:"workPhaseId" validate:"omitempty,gt=0"`
	Hours       int           `json:"hours" validate:"omitempty,min=1,max=24"`
}

func (r *CreateTimesheetRequest) Validate() error {
	return validation.Struct(r)
}

// Timesheet builds the normalised record described by the request.
func (r *CreateTimesheetRequest) Timesheet() *Timesheet {
	t := &Timesheet{
		UserID:      r.UserID,
		Date:        r.Date,
		Type:        r.Type,
		WorkPhaseID: r.WorkPhaseID,
		Hours:       r.Hours,
	}
	t.Normalize()
	return t
}

// ------------------------------------------------------------

// UpdateTimesheetRequest is a partial update: nil fields keep their stored
// value.
type UpdateTimesheetRequest struct {
	ID          int            `json:"-" param:"id" validate:"required,gt=0"`
	Date        *string        `json:"date" validate:"omitempty,isodate"`
	Type        *TimesheetType `json:"type" validate:"omitempty,oneof=LAVORATO MALATTIA FERIE"`
	WorkPhaseID *int           `json:"workPhaseId" validate:"omitempty,gt=0"`
	Hours       *int           `json:"hours" validate:"omitempty,min=1,max=24"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	return validation.Struct(r)
}

// Apply merges the request onto existing and normalises the result.
func (r *UpdateTimesheetRequest) Apply(existing Timesheet) *Timesheet {
	merged := existing
	if r.Date != nil {
		merged.Date = *r.Date
	}
	if r.Type != nil {
		merged.Type = *r.Type
	}
	if r.WorkPhaseID != nil {
		id := *r.WorkPhaseID
		merged.WorkPhaseID = &id
	}
	if r.Hours != nil {
		merged.Hours = *r.Hours
	}
	merged.Normalize()
	return &merged
}

// ------------------------------------------------------------

type TimesheetIDRequest struct {
	ID int `json:"-" param:"id" validate:"required,gt=0"`
}

func (r *TimesheetIDRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type CreateWorkPhaseRequest struct {
	Code          string `json:"code" validate:"required,max=50"`
	Description   string `json:"description" validate:"required,max=500"`
	Category      string `json:"category" validate:"required,max=100"`
	HourThreshold *int   `json:"hourThreshold" validate:"omitempty,gt=0"`
}

func (r *CreateWorkPhaseRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	r.Category = strings.TrimSpace(r.Category)
	return validation.Struct(r)
}

// WorkPhase builds the record, applying DefaultHourThreshold.
func (r *CreateWorkPhaseRequest) WorkPhase() *WorkPhase {
	threshold := DefaultHourThreshold
	if r.HourThreshold != nil {
		threshold = *r.HourThreshold
	}
	return &WorkPhase{
		Code:          r.Code,
		Description:   r.Description,
		Category:      r.Category,
		HourThreshold: threshold,
	}
}

// ------------------------------------------------------------

type UpdateWorkPhaseRequest struct {
	ID            int     `json:"-" param:"id" validate:"required,gt=0"`
	Code          *string `json:"code" validate:"omitempty,min=1,max=50"`
	Description   *string `json:"description" validate:"omitempty,min=1,max=500"`
	Category      *string `json:"category" validate:"omitempty,min=1,max=100"`
	HourThreshold *int    `json:"hourThreshold" validate:"omitempty,gt=0"`
}

func (r *UpdateWorkPhaseRequest) Validate() error {
	return validation.Struct(r)
}

// Apply merges the request onto existing.
func (r *UpdateWorkPhaseRequest) Apply(existing WorkPhase) *WorkPhase {
	merged := existing
	if r.Code != nil {
		merged.Code = strings.TrimSpace(*r.Code)
	}
	if r.Description != nil {
		merged.Description = *r.Description
	}
	if r.Category != nil {
		merged.Category = strings.TrimSpace(*r.Category)
	}
	if r.HourThreshold != nil {
		merged.HourThreshold = *r.HourThreshold
	}
	return &merged
}

// ------------------------------------------------------------

type WorkPhaseIDRequest struct {
	ID int `json:"-" param:"id" validate:"required,gt=0"`
}

func (r *WorkPhaseIDRequest) Validate() error {
	return validation.Struct(r)
}

// ------------------------------------------------------------

type CreateUserRequest struct {
	FullName   string `json:"fullName" validate:"required,max=200"`
	AccessCode string `json:"accessCode" validate:"omitempty,max=200"`
	IsAdmin    bool   `json:"isAdmin"`
}

func (r *CreateUserRequest) Validate() error {
	r.FullName = strings.TrimSpace(r.FullName)
	return validation.Struct(r)
}

// User builds the account. The access code defaults to the full name and is
// always stored trimmed and lower-cased.
func (r *CreateUserRequest) User() *User {
	code := r.AccessCode
	if strings.TrimSpace(code) == "" {
		code = r.FullName
	}
	return &User{
		FullName:   strings.ToUpper(r.FullName),
		AccessCode: NormalizeAccessCode(code),
		IsAdmin:    r.IsAdmin,
	}
}

// ------------------------------------------------------------

// MonthRequest optionally narrows an aggregation to one month.
type MonthRequest struct {
	Month string `query:"month" validate:"omitempty,yearmonth"`
}

func (r *MonthRequest) Validate() error {
	return validation.Struct(r)
}

// Period returns the requested month, nil for all time.
func (r *MonthRequest) Period() *string {
	if r.Month == "" {
		return nil
	}
	month := r.Month
	return &month
}
