// Package model holds the domain records shared by the repository, service
// and handler layers.
package model

import "time"

// Base carries the audit timestamps common to every table.
type Base struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
