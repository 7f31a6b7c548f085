package model

// PhaseHours is the time one employee booked against one phase.
type PhaseHours struct {
	PhaseID int       `json:"phaseId"`
	Phase   WorkPhase `json:"phase"`
	Hours   int       `json:"hours"`
}

// EmployeeHours summarises the worked hours of one employee.
type EmployeeHours struct {
	User       User         `json:"user"`
	TotalHours int          `json:"totalHours"`
	Phases     []PhaseHours `json:"phases"`
}

// PhaseTotal compares the hours booked on a phase with its threshold.
type PhaseTotal struct {
	Phase       WorkPhase `json:"phase"`
	TotalHours  int       `json:"totalHours"`
	Threshold   int       `json:"threshold"`
	PercentUsed float64   `json:"percentUsed"`
	Exceeded    bool      `json:"exceeded"`
}

// AdminStats feeds the admin dashboard counters.
type AdminStats struct {
	TotalEmployees      int `json:"totalEmployees"`
	ActiveToday         int `json:"activeToday"`
	TotalHoursThisMonth int `json:"totalHoursThisMonth"`
	PhasesCount         int `json:"phasesCount"`
}

// UserPhaseSum is a raw aggregation row: hours per (user, phase). PhaseID is
// nil for worked hours whose phase was deleted.
type UserPhaseSum struct {
	UserID  string
	PhaseID *int
	Hours   int
}
