package db

import (
	"context"
	"database/sql"
)

const schemaMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text NOT NULL,
    password_digest text NOT NULL DEFAULT '',
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);

CREATE TABLE IF NOT EXISTS vets (
    id bigserial PRIMARY KEY,
    name text NOT NULL
);

CREATE TABLE IF NOT EXISTS pets (
    id bigserial PRIMARY KEY,
    name text NOT NULL,
    owner_name text NOT NULL DEFAULT '',
    owner_phone text NOT NULL DEFAULT '',
    age integer NOT NULL DEFAULT 0,
    pet_type integer NOT NULL DEFAULT 1,
    vet_id bigint REFERENCES vets(id) ON DELETE SET NULL,
    created_by uuid REFERENCES users(id),
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS pets_name_idx ON pets (name);
`

// RunMigration applies the idempotent schema migration.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaMigration)
	return err
}
