package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const workPhaseColumns = `id, code, description, category, hour_threshold, created_at`

type WorkPhaseRepository struct {
	db *pgxpool.Pool
}

func NewWorkPhaseRepository(db *pgxpool.Pool) *WorkPhaseRepository {
	return &WorkPhaseRepository{db: db}
}

func scanWorkPhase(row pgx.Row) (*model.WorkPhase, error) {
	var p model.WorkPhase
	err := row.Scan(&p.ID, &p.Code, &p.Description, &p.Category, &p.HourThreshold, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("work_phases")
		}
		return nil, err
	}
	return &p, nil
}

// List returns the whole catalog ordered by code.
func (r *WorkPhaseRepository) List(ctx context.Context) ([]model.WorkPhase, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workPhaseColumns+` FROM work_phases ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phases := []model.WorkPhase{}
	for rows.Next() {
		p, err := scanWorkPhase(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, *p)
	}
	return phases, rows.Err()
}

func (r *WorkPhaseRepository) GetByID(ctx context.Context, id int) (*model.WorkPhase, error) {
	row := r.db.QueryRow(ctx, `SELECT `+workPhaseColumns+` FROM work_phases WHERE id = $1`, id)
	return scanWorkPhase(row)
}

func (r *WorkPhaseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM work_phases`).Scan(&count)
	return count, err
}

func (r *WorkPhaseRepository) Create(ctx context.Context, p *model.WorkPhase) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO work_phases (code, description, category, hour_threshold)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		p.Code, p.Description, p.Category, p.HourThreshold,
	).Scan(&p.ID, &p.CreatedAt)
}

// CreateIfMissing inserts p unless its code is taken and reports whether a
// row was written.
func (r *WorkPhaseRepository) CreateIfMissing(ctx context.Context, p *model.WorkPhase) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO work_phases (code, description, category, hour_threshold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING`,
		p.Code, p.Description, p.Category, p.HourThreshold,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Update overwrites the mutable columns of p.
func (r *WorkPhaseRepository) Update(ctx context.Context, p *model.WorkPhase) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE work_phases
		SET code = $2, description = $3, category = $4, hour_threshold = $5
		WHERE id = $1`,
		p.ID, p.Code, p.Description, p.Category, p.HourThreshold,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound("work_phases")
	}
	return nil
}

// Delete removes the phase. Worked entries keep their hours with a null
// phase (ON DELETE SET NULL).
func (r *WorkPhaseRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_phases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound("work_phases")
	}
	return nil
}
