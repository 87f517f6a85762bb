package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const employmentColumns = `id, user_id, category_id, title, description, requirements, location, salary_range`

// EmploymentRepositoryPG implements domain.EmploymentRepository using PostgreSQL.
type EmploymentRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewEmploymentRepository creates a new employment repo.
func NewEmploymentRepository(pool *pgxpool.Pool) *EmploymentRepositoryPG {
	return &EmploymentRepositoryPG{pool: pool}
}

func (r *EmploymentRepositoryPG) Create(ctx context.Context, employment *domain.Employment) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO employments (user_id, category_id, title, description, requirements, location, salary_range)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id;
`, employment.UserID, employment.CategoryID, employment.Title, employment.Description,
		employment.Requirements, employment.Location, employment.SalaryRange)
	return row.Scan(&employment.ID)
}

func (r *EmploymentRepositoryPG) List(ctx context.Context) ([]domain.Employment, error) {
	return r.queryEmployments(ctx, `SELECT `+employmentColumns+` FROM employments ORDER BY id`)
}

func (r *EmploymentRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.Employment, error) {
	return r.queryEmployments(ctx, `SELECT `+employmentColumns+` FROM employments WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *EmploymentRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Employment, error) {
	var e domain.Employment
	row := r.pool.QueryRow(ctx, `SELECT `+employmentColumns+` FROM employments WHERE id = $1`, id)
	if err := scanEmployment(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmploymentRepositoryPG) Update(ctx context.Context, employment *domain.Employment) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE employments
SET user_id = $2, category_id = $3, title = $4, description = $5, requirements = $6, location = $7, salary_range = $8
WHERE id = $1;
`, employment.ID, employment.UserID, employment.CategoryID, employment.Title, employment.Description,
		employment.Requirements, employment.Location, employment.SalaryRange)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *EmploymentRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *EmploymentRepositoryPG) queryEmployments(ctx context.Context, query string, args ...any) ([]domain.Employment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Employment
	for rows.Next() {
		var e domain.Employment
		if err := scanEmployment(rows, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func scanEmployment(row pgx.Row, e *domain.Employment) error {
	return row.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Title, &e.Description, &e.Requirements, &e.Location, &e.SalaryRange)
}
