package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the route history schema. Safe to run repeatedly.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteHistoryQuery := `
	CREATE TABLE IF NOT EXISTS route_history (
		id BIGSERIAL PRIMARY KEY,
		request_hash TEXT NOT NULL,
		source_id TEXT NOT NULL,
		order_count INTEGER NOT NULL,
		best_path JSONB NOT NULL,
		total_time_mins DOUBLE PRECISION NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_history_computed_at
	ON route_history(computed_at DESC);
	`

	statements := []string{
		createRouteHistoryQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
