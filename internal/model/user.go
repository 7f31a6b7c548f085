package model

import "strings"

// User is an employee or administrator account.
//
// AccessCode is the lower-cased login code (the employee's full name). It is
// never serialised back to clients.
type User struct {
	ID         string `json:"id" db:"id"`
	FullName   string `json:"fullName" db:"full_name"`
	AccessCode string `json:"-" db:"access_code"`
	IsAdmin    bool   `json:"isAdmin" db:"is_admin"`
	Base
}

// NormalizeAccessCode trims and lower-cases a login code.
func NormalizeAccessCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
