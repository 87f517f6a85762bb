package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const socialIntegrationColumns = `id, user_id, category_id, association_name, description, interested, saved`

// SocialIntegrationRepositoryPG implements domain.SocialIntegrationRepository using PostgreSQL.
type SocialIntegrationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewSocialIntegrationRepository creates a new social integration repo.
func NewSocialIntegrationRepository(pool *pgxpool.Pool) *SocialIntegrationRepositoryPG {
	return &SocialIntegrationRepositoryPG{pool: pool}
}

func (r *SocialIntegrationRepositoryPG) Create(ctx context.Context, integration *domain.SocialIntegration) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO social_integrations (user_id, category_id, association_name, description, interested, saved)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id;
`, integration.UserID, integration.CategoryID, integration.AssociationName, integration.Description,
		integration.Interested, integration.Saved)
	return row.Scan(&integration.ID)
}

func (r *SocialIntegrationRepositoryPG) List(ctx context.Context) ([]domain.SocialIntegration, error) {
	return r.queryIntegrations(ctx, `SELECT `+socialIntegrationColumns+` FROM social_integrations ORDER BY id`)
}

func (r *SocialIntegrationRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.SocialIntegration, error) {
	return r.queryIntegrations(ctx, `SELECT `+socialIntegrationColumns+` FROM social_integrations WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *SocialIntegrationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.SocialIntegration, error) {
	var s domain.SocialIntegration
	row := r.pool.QueryRow(ctx, `SELECT `+socialIntegrationColumns+` FROM social_integrations WHERE id = $1`, id)
	if err := scanSocialIntegration(row, &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SocialIntegrationRepositoryPG) Update(ctx context.Context, integration *domain.SocialIntegration) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE social_integrations
SET user_id = $2, category_id = $3, association_name = $4, description = $5, interested = $6, saved = $7
WHERE id = $1;
`, integration.ID, integration.UserID, integration.CategoryID, integration.AssociationName,
		integration.Description, integration.Interested, integration.Saved)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *SocialIntegrationRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM social_integrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *SocialIntegrationRepositoryPG) queryIntegrations(ctx context.Context, query string, args ...any) ([]domain.SocialIntegration, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SocialIntegration
	for rows.Next() {
		var s domain.SocialIntegration
		if err := scanSocialIntegration(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func scanSocialIntegration(row pgx.Row, s *domain.SocialIntegration) error {
	return row.Scan(&s.ID, &s.UserID, &s.CategoryID, &s.AssociationName, &s.Description, &s.Interested, &s.Saved)
}
