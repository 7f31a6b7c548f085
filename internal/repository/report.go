package repository

import (
	"context"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository runs the aggregation queries behind the admin views.
// Optional bounds are a half-open date range; nil leaves that side open.
type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// SumWorkedByUserPhase returns the worked hours grouped by user and phase.
// Hours whose phase was deleted come back with a nil PhaseID.
func (r *ReportRepository) SumWorkedByUserPhase(ctx context.Context, from, to *string) ([]model.UserPhaseSum, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, work_phase_id, SUM(hours)
		FROM timesheets
		WHERE type = 'LAVORATO'
			AND ($1::date IS NULL OR date >= $1::date)
			AND ($2::date IS NULL OR date < $2::date)
		GROUP BY user_id, work_phase_id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := []model.UserPhaseSum{}
	for rows.Next() {
		var s model.UserPhaseSum
		if err := rows.Scan(&s.UserID, &s.PhaseID, &s.Hours); err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

// SumWorkedByPhase returns the worked hours per existing phase id.
func (r *ReportRepository) SumWorkedByPhase(ctx context.Context, from, to *string) (map[int]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT work_phase_id, SUM(hours)
		FROM timesheets
		WHERE type = 'LAVORATO'
			AND work_phase_id IS NOT NULL
			AND ($1::date IS NULL OR date >= $1::date)
			AND ($2::date IS NULL OR date < $2::date)
		GROUP BY work_phase_id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := map[int]int{}
	for rows.Next() {
		var phaseID, hours int
		if err := rows.Scan(&phaseID, &hours); err != nil {
			return nil, err
		}
		sums[phaseID] = hours
	}
	return sums, rows.Err()
}

// CountActiveOn counts the distinct users with an entry dated date.
func (r *ReportRepository) CountActiveOn(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT user_id) FROM timesheets WHERE date = $1::date`, date).Scan(&count)
	return count, err
}

// SumHoursBetween sums the hours of every entry type dated in [from, to).
func (r *ReportRepository) SumHoursBetween(ctx context.Context, from, to string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(hours), 0)
		FROM timesheets
		WHERE date >= $1::date AND date < $2::date`,
		from, to,
	).Scan(&total)
	return total, err
}
