package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"krishisahay/internal/models"
)

const userColumns = `id, sub, COALESCE(username, ''), email, name, created_at, updated_at`

// UpsertUser creates or updates a user based on their subject identifier.
func (d *DB) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (sub, username, email, name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sub) DO UPDATE SET
			username = COALESCE(EXCLUDED.username, users.username),
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		user.Sub,
		nullIfEmpty(user.Username),
		user.Email,
		user.Name,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// GetUserBySub retrieves a user by their OIDC subject identifier.
func (d *DB) GetUserBySub(ctx context.Context, sub string) (*models.User, error) {
	return d.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE sub = $1`, sub)
}

// GetUserByUsername retrieves a user by their PKI username.
func (d *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (d *DB) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := d.Pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Sub,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
