package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dates are exchanged as text so they never pick up a time zone.
const timesheetColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), type, work_phase_id, hours, created_at, updated_at`

type TimesheetRepository struct {
	db *pgxpool.Pool
}

func NewTimesheetRepository(db *pgxpool.Pool) *TimesheetRepository {
	return &TimesheetRepository{db: db}
}

func scanTimesheet(row pgx.Row) (*model.Timesheet, error) {
	var t model.Timesheet
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Type, &t.WorkPhaseID, &t.Hours, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("timesheets")
		}
		return nil, err
	}
	return &t, nil
}

// ListByUserBetween returns the user's entries dated in [from, to), newest
// first.
func (r *TimesheetRepository) ListByUserBetween(ctx context.Context, userID, from, to string) ([]model.Timesheet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+timesheetColumns+`
		FROM timesheets
		WHERE user_id = $1 AND date >= $2::date AND date < $3::date
		ORDER BY date DESC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timesheets := []model.Timesheet{}
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, *t)
	}
	return timesheets, rows.Err()
}

func (r *TimesheetRepository) GetByID(ctx context.Context, id int) (*model.Timesheet, error) {
	row := r.db.QueryRow(ctx, `SELECT `+timesheetColumns+` FROM timesheets WHERE id = $1`, id)
	return scanTimesheet(row)
}

// GetByUserAndDate returns the user's entry on date, if any.
func (r *TimesheetRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*model.Timesheet, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+timesheetColumns+`
		FROM timesheets
		WHERE user_id = $1 AND date = $2::date`,
		userID, date,
	)
	return scanTimesheet(row)
}

func (r *TimesheetRepository) Create(ctx context.Context, t *model.Timesheet) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO timesheets (user_id, date, type, work_phase_id, hours)
		VALUES ($1, $2::date, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		t.UserID, t.Date, t.Type, t.WorkPhaseID, t.Hours,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update overwrites the mutable columns of t and refreshes UpdatedAt.
func (r *TimesheetRepository) Update(ctx context.Context, t *model.Timesheet) error {
	err := r.db.QueryRow(ctx, `
		UPDATE timesheets
		SET date = $2::date, type = $3, work_phase_id = $4, hours = $5
		WHERE id = $1
		RETURNING updated_at`,
		t.ID, t.Date, t.Type, t.WorkPhaseID, t.Hours,
	).Scan(&t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound("timesheets")
	}
	return err
}

func (r *TimesheetRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timesheets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound("timesheets")
	}
	return nil
}
