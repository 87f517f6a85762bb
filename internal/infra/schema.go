package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		profile_picture TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		user_id BIGINT REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS employments (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		category_id BIGINT NOT NULL REFERENCES categories(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT,
		location TEXT,
		salary_range BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		employment_id BIGINT NOT NULL REFERENCES employments(id),
		status TEXT NOT NULL,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL,
		cover_letter TEXT NOT NULL,
		resume TEXT NOT NULL,
		linkedin TEXT NOT NULL,
		portfolio TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS social_integrations (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		category_id BIGINT NOT NULL REFERENCES categories(id),
		association_name TEXT NOT NULL,
		description TEXT NOT NULL,
		interested BOOLEAN NOT NULL DEFAULT FALSE,
		saved BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS fundings (
		id BIGSERIAL PRIMARY KEY,
		category_id BIGINT NOT NULL REFERENCES categories(id),
		grant_name TEXT NOT NULL,
		grant_type TEXT NOT NULL,
		amount BIGINT NOT NULL,
		description TEXT,
		eligibility_criteria TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS funding_applications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		funding_id BIGINT NOT NULL REFERENCES fundings(id),
		status TEXT NOT NULL,
		application_type TEXT NOT NULL,
		supporting_documents TEXT,
		household_income BIGINT,
		number_of_dependents BIGINT,
		reason_for_aid TEXT,
		concept_note TEXT,
		business_profile TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS donations (
		donation_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		donation_type TEXT NOT NULL,
		name TEXT,
		organisation_name TEXT,
		amount BIGINT NOT NULL,
		payment_method TEXT NOT NULL,
		donation_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// InitSchema creates the service tables when they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
