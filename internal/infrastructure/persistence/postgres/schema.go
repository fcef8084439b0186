package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the table set if it does not exist yet. Called once
// at startup; safe to run repeatedly.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS cooks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			floor INT,
			specialty TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS dishes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			preparation_time INT,
			default_cook_id TEXT REFERENCES cooks(id),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS daily_orders (
			id TEXT PRIMARY KEY,
			order_date DATE NOT NULL,
			dish_id TEXT NOT NULL REFERENCES dishes(id),
			assigned_cook_id TEXT NOT NULL REFERENCES cooks(id),
			quantity INT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE (order_date, dish_id)
		);

		CREATE TABLE IF NOT EXISTS external_sync_log (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES daily_orders(id) ON DELETE CASCADE,
			sync_status TEXT NOT NULL,
			request_payload JSONB NOT NULL,
			response_payload JSONB,
			error_message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := pool.Exec(ctx, stmt)
	return err
}
