// Package utils contains small calendar helpers shared by the services.
//
// Dates travel as "YYYY-MM-DD" strings and months as "YYYY-MM" strings, the
// same layouts the validation package accepts.
package utils

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// MonthRange returns the half-open date range [from, to) covering yearMonth.
// to is the first day of the following month, so every month length and
// leap year is covered without special cases.
func MonthRange(yearMonth string) (from, to string, err error) {
	start, err := time.Parse(monthLayout, yearMonth)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", yearMonth, err)
	}
	return start.Format(dateLayout), start.AddDate(0, 1, 0).Format(dateLayout), nil
}

// Today formats now as a calendar date in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dateLayout)
}

// CurrentMonth formats now as a calendar month in loc.
func CurrentMonth(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(monthLayout)
}
