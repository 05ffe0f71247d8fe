package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// Postgres-backed log of computed routes. Write-only from the request path;
// reads serve history inspection and never feed back into optimization.
type PgRouteLog struct {
	DB *sql.DB
}

func NewPgRouteLog(db *sql.DB) *PgRouteLog {
	return &PgRouteLog{DB: db}
}

// Persist one optimization outcome.
func (r *PgRouteLog) SaveRoute(ctx context.Context, rec domain.RouteRecord) (err error) {
	defer obs.Time(ctx, "routelog.SaveRoute")(&err)

	if r.DB == nil {
		return errors.New("save route: DB is nil")
	}

	pathJSON, err := json.Marshal(rec.BestPath)
	if err != nil {
		return fmt.Errorf("save route: marshal best path: %w", err)
	}

	q := `
	INSERT INTO route_history (request_hash, source_id, order_count, best_path, total_time_mins, computed_at)
	VALUES ($1, $2, $3, $4, $5, $6);
	`

	if _, err := r.DB.ExecContext(
		ctx, q,
		rec.RequestHash, rec.SourceID, rec.OrderCount, pathJSON, rec.TotalTimeMins, rec.ComputedAt,
	); err != nil {
		return fmt.Errorf("save route: insert route_history: %w", err)
	}

	return nil
}

// Retrieve the most recently computed routes, newest first.
func (r *PgRouteLog) RecentRoutes(ctx context.Context, limit int) (_ []domain.RouteRecord, err error) {
	defer obs.Time(ctx, "routelog.RecentRoutes")(&err)

	if r.DB == nil {
		return nil, errors.New("recent routes: DB is nil")
	}
	if limit < 1 {
		return nil, fmt.Errorf("recent routes: limit must be positive, got %d", limit)
	}

	q := `
	SELECT request_hash, source_id, order_count, best_path, total_time_mins, computed_at
	FROM route_history
	ORDER BY computed_at DESC, id DESC
	LIMIT $1;
	`

	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent routes: query route_history: %w", err)
	}
	defer rows.Close()

	out := make([]domain.RouteRecord, 0, limit)
	for rows.Next() {
		var rec domain.RouteRecord
		var pathJSON []byte

		if err := rows.Scan(
			&rec.RequestHash, &rec.SourceID, &rec.OrderCount, &pathJSON, &rec.TotalTimeMins, &rec.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("recent routes: scan rows: %w", err)
		}

		if err := json.Unmarshal(pathJSON, &rec.BestPath); err != nil {
			return nil, fmt.Errorf("recent routes: unmarshal best path: %w", err)
		}

		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent routes: row iteration: %w", err)
	}

	return out, nil
}
