package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements DDL idempotente para el arranque. En producción con esquema
// ya gestionado, los IF NOT EXISTS lo convierten en no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		disabled      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username)`,
	`CREATE TABLE IF NOT EXISTS products (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		sku            TEXT NOT NULL,
		current_status TEXT NOT NULL,
		last_updated   TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS products_sku_key ON products (sku)`,
	// La FK con ON DELETE CASCADE materializa la propiedad exclusiva
	// Product -> Events en la capa de store (no hay borrado de productos en
	// la API, pero la regla vive aquí si se reintroduce).
	`CREATE TABLE IF NOT EXISTS events (
		id         UUID PRIMARY KEY,
		seq        BIGSERIAL,
		product_id UUID NOT NULL REFERENCES products (id) ON DELETE CASCADE,
		event_type TEXT NOT NULL,
		location   TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		ts         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS events_product_ts_seq_idx ON events (product_id, ts, seq)`,
}

// EnsureSchema crea las tablas e índices si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
