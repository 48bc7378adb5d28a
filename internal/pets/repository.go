package pets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danipardo/petclinic/internal/db"
)

// Repository is the pet store behind the handlers. Get returns nil
// without error when no pet matches.
type Repository interface {
	Search(ctx context.Context, name string) ([]Pet, error)
	Get(ctx context.Context, id int64) (*Pet, error)
	Save(ctx context.Context, pet *Pet) error
	Delete(ctx context.Context, id int64) error
}

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Search(ctx context.Context, name string) ([]Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, owner_name, owner_phone, age, pet_type, vet_id, created_by, created_at
		FROM pets
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, name)
	if err != nil {
		return nil, fmt.Errorf("pets: search: %w", err)
	}
	defer rows.Close()

	var list []Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pets: search: %w", err)
	}

	return list, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_name, owner_phone, age, pet_type, vet_id, created_by, created_at
		FROM pets
		WHERE id = $1
	`, id)

	pet, err := scanPet(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// Save inserts when the pet has no id yet, updates otherwise.
func (r *PostgresRepository) Save(ctx context.Context, pet *Pet) error {
	if pet.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO pets (name, owner_name, owner_phone, age, pet_type, vet_id, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`,
			pet.Name, pet.OwnerName, pet.OwnerPhone, pet.Age, pet.Type,
			nullableVet(pet.VetID), nullableUser(pet.CreatedBy),
		).Scan(&pet.ID, &pet.CreatedAt)
		if err != nil {
			return fmt.Errorf("pets: insert: %w", err)
		}
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, owner_name = $3, owner_phone = $4, age = $5, pet_type = $6, vet_id = $7
		WHERE id = $1
	`,
		pet.ID, pet.Name, pet.OwnerName, pet.OwnerPhone, pet.Age, pet.Type,
		nullableVet(pet.VetID),
	)
	if err != nil {
		return fmt.Errorf("pets: update: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("pets: delete: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (*Pet, error) {
	var (
		pet       Pet
		vetID     sql.NullInt64
		createdBy uuid.NullUUID
	)

	err := row.Scan(
		&pet.ID, &pet.Name, &pet.OwnerName, &pet.OwnerPhone,
		&pet.Age, &pet.Type, &vetID, &createdBy, &pet.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("pets: scan: %w", err)
	}

	if vetID.Valid {
		v := vetID.Int64
		pet.VetID = &v
	}
	if createdBy.Valid {
		pet.CreatedBy = createdBy.UUID
	}

	return &pet, nil
}

func nullableVet(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func nullableUser(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}
