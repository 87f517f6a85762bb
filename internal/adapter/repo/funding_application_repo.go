package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const fundingApplicationColumns = `id, user_id, funding_id, status, application_type, supporting_documents,
	household_income, number_of_dependents, reason_for_aid, concept_note, business_profile`

// FundingApplicationRepositoryPG implements domain.FundingApplicationRepository using PostgreSQL.
type FundingApplicationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewFundingApplicationRepository creates a new funding application repo.
func NewFundingApplicationRepository(pool *pgxpool.Pool) *FundingApplicationRepositoryPG {
	return &FundingApplicationRepositoryPG{pool: pool}
}

func (r *FundingApplicationRepositoryPG) Create(ctx context.Context, application *domain.FundingApplication) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO funding_applications (user_id, funding_id, status, application_type, supporting_documents,
	household_income, number_of_dependents, reason_for_aid, concept_note, business_profile)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id;
`, application.UserID, application.FundingID, application.Status, application.ApplicationType,
		application.SupportingDocuments, application.HouseholdIncome, application.NumberOfDependents,
		application.ReasonForAid, application.ConceptNote, application.BusinessProfile)
	return row.Scan(&application.ID)
}

func (r *FundingApplicationRepositoryPG) List(ctx context.Context) ([]domain.FundingApplication, error) {
	return r.queryFundingApplications(ctx, `SELECT `+fundingApplicationColumns+` FROM funding_applications ORDER BY id`)
}

func (r *FundingApplicationRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.FundingApplication, error) {
	return r.queryFundingApplications(ctx, `SELECT `+fundingApplicationColumns+` FROM funding_applications WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *FundingApplicationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.FundingApplication, error) {
	var fa domain.FundingApplication
	row := r.pool.QueryRow(ctx, `SELECT `+fundingApplicationColumns+` FROM funding_applications WHERE id = $1`, id)
	if err := scanFundingApplication(row, &fa); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &fa, nil
}

func (r *FundingApplicationRepositoryPG) Update(ctx context.Context, application *domain.FundingApplication) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE funding_applications
SET user_id = $2, funding_id = $3, status = $4, application_type = $5, supporting_documents = $6,
    household_income = $7, number_of_dependents = $8, reason_for_aid = $9, concept_note = $10, business_profile = $11
WHERE id = $1;
`, application.ID, application.UserID, application.FundingID, application.Status, application.ApplicationType,
		application.SupportingDocuments, application.HouseholdIncome, application.NumberOfDependents,
		application.ReasonForAid, application.ConceptNote, application.BusinessProfile)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *FundingApplicationRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM funding_applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *FundingApplicationRepositoryPG) queryFundingApplications(ctx context.Context, query string, args ...any) ([]domain.FundingApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FundingApplication
	for rows.Next() {
		var fa domain.FundingApplication
		if err := scanFundingApplication(rows, &fa); err != nil {
			return nil, err
		}
		items = append(items, fa)
	}
	return items, rows.Err()
}

func scanFundingApplication(row pgx.Row, fa *domain.FundingApplication) error {
	return row.Scan(&fa.ID, &fa.UserID, &fa.FundingID, &fa.Status, &fa.ApplicationType, &fa.SupportingDocuments,
		&fa.HouseholdIncome, &fa.NumberOfDependents, &fa.ReasonForAid, &fa.ConceptNote, &fa.BusinessProfile)
}
