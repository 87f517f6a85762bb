package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const fundingColumns = `id, category_id, grant_name, grant_type, amount, description, eligibility_criteria`

// FundingRepositoryPG implements domain.FundingRepository using PostgreSQL.
type FundingRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewFundingRepository creates a new funding repo.
func NewFundingRepository(pool *pgxpool.Pool) *FundingRepositoryPG {
	return &FundingRepositoryPG{pool: pool}
}

func (r *FundingRepositoryPG) Create(ctx context.Context, funding *domain.Funding) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO fundings (category_id, grant_name, grant_type, amount, description, eligibility_criteria)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id;
`, funding.CategoryID, funding.GrantName, funding.GrantType, funding.Amount, funding.Description, funding.EligibilityCriteria)
	return row.Scan(&funding.ID)
}

func (r *FundingRepositoryPG) List(ctx context.Context) ([]domain.Funding, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+fundingColumns+` FROM fundings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Funding
	for rows.Next() {
		var f domain.Funding
		if err := scanFunding(rows, &f); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *FundingRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Funding, error) {
	var f domain.Funding
	row := r.pool.QueryRow(ctx, `SELECT `+fundingColumns+` FROM fundings WHERE id = $1`, id)
	if err := scanFunding(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FundingRepositoryPG) Update(ctx context.Context, funding *domain.Funding) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE fundings
SET category_id = $2, grant_name = $3, grant_type = $4, amount = $5, description = $6, eligibility_criteria = $7
WHERE id = $1;
`, funding.ID, funding.CategoryID, funding.GrantName, funding.GrantType, funding.Amount,
		funding.Description, funding.EligibilityCriteria)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *FundingRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fundings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func scanFunding(row pgx.Row, f *domain.Funding) error {
	return row.Scan(&f.ID, &f.CategoryID, &f.GrantName, &f.GrantType, &f.Amount, &f.Description, &f.EligibilityCriteria)
}
