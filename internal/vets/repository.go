package vets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danipardo/petclinic/internal/db"
)

// Repository is the vet store behind the handlers. Get returns nil
// without error when no vet matches.
type Repository interface {
	Search(ctx context.Context, name string) ([]Vet, error)
	Get(ctx context.Context, id int64) (*Vet, error)
	Save(ctx context.Context, vet *Vet) error
	Delete(ctx context.Context, id int64) error
}

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Search(ctx context.Context, name string) ([]Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name
		FROM vets
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("vets: search: %w", err)
	}
	defer rows.Close()

	var list []Vet
	for rows.Next() {
		var v Vet
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("vets: scan: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vets: search: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Vet, error) {
	var v Vet
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM vets
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vets: get: %w", err)
	}

	return &v, nil
}

// Save inserts when the vet has no id yet, updates otherwise.
func (r *PostgresRepository) Save(ctx context.Context, vet *Vet) error {
	if vet.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO vets (name)
			VALUES ($1)
			RETURNING id
		`, vet.Name).Scan(&vet.ID)
		if err != nil {
			return fmt.Errorf("vets: insert: %w", err)
		}
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE vets
		SET name = $2
		WHERE id = $1
	`, vet.ID, vet.Name)
	if err != nil {
		return fmt.Errorf("vets: update: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM vets
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("vets: delete: %w", err)
	}
	return nil
}
