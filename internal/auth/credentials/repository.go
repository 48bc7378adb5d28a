package credentials

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danipardo/petclinic/internal/db"
)

// Repository is the external identity store consulted during login.
type Repository interface {
	// FindByUsername returns every user record matching the username.
	// The verifier decides what zero or more than one match means.
	FindByUsername(ctx context.Context, username string) ([]User, error)

	Create(ctx context.Context, username, digest string) (uuid.UUID, error)
}

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, password_digest, created_at
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		return nil, fmt.Errorf("credentials: user lookup: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordDigest, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("credentials: user scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("credentials: user lookup: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) Create(ctx context.Context, username, digest string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_digest)
		VALUES ($1, $2)
		RETURNING id
	`, username, digest).Scan(&id)

	if err != nil {
		return uuid.Nil, fmt.Errorf("credentials: user insert: %w", err)
	}
	return id, nil
}
