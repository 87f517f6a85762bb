package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const userColumns = `id, username, email, password, first_name, last_name, profile_picture`

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(pool *pgxpool.Pool) *UserRepositoryPG {
	return &UserRepositoryPG{pool: pool}
}

// Create inserts a new user and fills in the generated id.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO users (username, email, password, first_name, last_name, profile_picture)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id;
`, user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.ProfilePicture)
	if err := row.Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// List returns all users.
func (r *UserRepositoryPG) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUserFields(rows, &u); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

// GetByID fetches a user by id.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail fetches a user by email address.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// Update writes all mutable columns of the user row.
func (r *UserRepositoryPG) Update(ctx context.Context, user *domain.User) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE users
SET username = $2, email = $3, password = $4, first_name = $5, last_name = $6, profile_picture = $7
WHERE id = $1;
`, user.ID, user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.ProfilePicture)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return notFoundWhenZero(tag)
}

// Delete removes a user row.
func (r *UserRepositoryPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return notFoundWhenZero(tag)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := scanUserFields(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func scanUserFields(row pgx.Row, u *domain.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.ProfilePicture)
}

func notFoundWhenZero(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
