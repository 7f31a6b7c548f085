package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, full_name, access_code, is_admin, created_at, updated_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FullName, &u.AccessCode, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound("users")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByAccessCode looks a user up by an already normalised access code.
func (r *UserRepository) GetByAccessCode(ctx context.Context, accessCode string) (*model.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE access_code = $1`, accessCode)
	return scanUser(row)
}

// ListEmployees returns the non-admin users ordered by full name.
func (r *UserRepository) ListEmployees(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE is_admin = false
		ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin = false`).Scan(&count)
	return count, err
}

// Create inserts u and fills its generated id and timestamps. A reused
// access code surfaces as a unique violation.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, access_code, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		u.FullName, u.AccessCode, u.IsAdmin,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// CreateIfMissing inserts u unless its access code is taken and reports
// whether a row was written.
func (r *UserRepository) CreateIfMissing(ctx context.Context, u *model.User) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO users (full_name, access_code, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (access_code) DO NOTHING`,
		u.FullName, u.AccessCode, u.IsAdmin,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
