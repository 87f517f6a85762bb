package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// CategoryRepositoryPG implements domain.CategoryRepository using PostgreSQL.
type CategoryRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new category repo.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{pool: pool}
}

func (r *CategoryRepositoryPG) Create(ctx context.Context, category *domain.Category) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO categories (name, description, user_id)
VALUES ($1, $2, $3)
RETURNING id;
`, category.Name, category.Description, category.UserID)
	return row.Scan(&category.ID)
}

func (r *CategoryRepositoryPG) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, user_id FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.UserID); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *CategoryRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	row := r.pool.QueryRow(ctx, `SELECT id, name, description, user_id FROM categories WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepositoryPG) Update(ctx context.Context, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE categories
SET name = $2, description = $3, user_id = $4
WHERE id = $1;
`, category.ID, category.Name, category.Description, category.UserID)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *CategoryRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}
