package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const applicationColumns = `id, user_id, employment_id, status, name, phone_number, email, cover_letter, resume, linkedin, portfolio`

// ApplicationRepositoryPG implements domain.ApplicationRepository using PostgreSQL.
type ApplicationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository creates a new application repo.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepositoryPG {
	return &ApplicationRepositoryPG{pool: pool}
}

func (r *ApplicationRepositoryPG) Create(ctx context.Context, application *domain.Application) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO applications (user_id, employment_id, status, name, phone_number, email, cover_letter, resume, linkedin, portfolio)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id;
`, application.UserID, application.EmploymentID, application.Status, application.Name, application.PhoneNumber,
		application.Email, application.CoverLetter, application.Resume, application.Linkedin, application.Portfolio)
	return row.Scan(&application.ID)
}

func (r *ApplicationRepositoryPG) List(ctx context.Context) ([]domain.Application, error) {
	return r.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY id`)
}

func (r *ApplicationRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	return r.queryApplications(ctx, `SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *ApplicationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	var a domain.Application
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	if err := scanApplication(row, &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepositoryPG) Update(ctx context.Context, application *domain.Application) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE applications
SET user_id = $2, employment_id = $3, status = $4, name = $5, phone_number = $6, email = $7,
    cover_letter = $8, resume = $9, linkedin = $10, portfolio = $11
WHERE id = $1;
`, application.ID, application.UserID, application.EmploymentID, application.Status, application.Name,
		application.PhoneNumber, application.Email, application.CoverLetter, application.Resume,
		application.Linkedin, application.Portfolio)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *ApplicationRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *ApplicationRepositoryPG) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func scanApplication(row pgx.Row, a *domain.Application) error {
	return row.Scan(&a.ID, &a.UserID, &a.EmploymentID, &a.Status, &a.Name, &a.PhoneNumber, &a.Email,
		&a.CoverLetter, &a.Resume, &a.Linkedin, &a.Portfolio)
}
