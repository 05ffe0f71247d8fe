package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Port: a boundary for recording computed routes in a data store.
type RouteLog interface {
	// Persist one optimization outcome.
	SaveRoute(ctx context.Context, rec domain.RouteRecord) error
	// Retrieve the most recently computed routes, newest first.
	RecentRoutes(ctx context.Context, limit int) ([]domain.RouteRecord, error)
}
