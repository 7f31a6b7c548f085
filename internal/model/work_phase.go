package model

import "time"

// DefaultHourThreshold is applied when a phase is created without one.
const DefaultHourThreshold = 100

// WorkPhase is an entry of the admin-managed phase catalog that worked
// timesheets reference.
type WorkPhase struct {
	ID            int       `json:"id" db:"id"`
	Code          string    `json:"code" db:"code"`
	Description   string    `json:"description" db:"description"`
	Category      string    `json:"category" db:"category"`
	HourThreshold int       `json:"hourThreshold" db:"hour_threshold"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
