package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const donationColumns = `donation_id, user_id, donation_type, name, organisation_name, amount, payment_method, donation_date`

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create inserts a donation. The donation date is set by the database at
// write time regardless of what the caller put in the record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO donations (user_id, donation_type, name, organisation_name, amount, payment_method, donation_date)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
RETURNING donation_id, donation_date;
`, donation.UserID, donation.DonationType, donation.Name, donation.OrganisationName, donation.Amount, donation.PaymentMethod)
	return row.Scan(&donation.DonationID, &donation.DonationDate)
}

func (r *DonationRepositoryPG) List(ctx context.Context) ([]domain.Donation, error) {
	return r.queryDonations(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY donation_id`)
}

func (r *DonationRepositoryPG) ListByUser(ctx context.Context, userID int64) ([]domain.Donation, error) {
	return r.queryDonations(ctx, `SELECT `+donationColumns+` FROM donations WHERE user_id = $1 ORDER BY donation_id`, userID)
}

func (r *DonationRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Donation, error) {
	var d domain.Donation
	row := r.pool.QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE donation_id = $1`, id)
	if err := scanDonation(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Update rewrites the donation row. The donation date is refreshed to the
// time of the write, mirroring create.
func (r *DonationRepositoryPG) Update(ctx context.Context, donation *domain.Donation) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE donations
SET user_id = $2, donation_type = $3, name = $4, organisation_name = $5, amount = $6, payment_method = $7, donation_date = NOW()
WHERE donation_id = $1;
`, donation.DonationID, donation.UserID, donation.DonationType, donation.Name, donation.OrganisationName,
		donation.Amount, donation.PaymentMethod)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *DonationRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM donations WHERE donation_id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func (r *DonationRepositoryPG) queryDonations(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := scanDonation(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func scanDonation(row pgx.Row, d *domain.Donation) error {
	return row.Scan(&d.DonationID, &d.UserID, &d.DonationType, &d.Name, &d.OrganisationName, &d.Amount, &d.PaymentMethod, &d.DonationDate)
}
