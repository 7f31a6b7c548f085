// Package sqlerr specifically handles database driver errors.
//
// It parses the SQLSTATE codes reported by PostgreSQL and converts them into
// client-facing errors (e.g. a unique violation on (user_id, date) becomes a
// 409 "A Timesheet with this Date already exists").
package sqlerr
