package domain

import "time"

// Persisted outcome of one optimization call.
// A RouteRecord is written after the response is produced and is never read
// back by the engine; it exists for history and offline analysis only.
type RouteRecord struct {
	RequestHash   string
	SourceID      string
	OrderCount    int
	BestPath      []string
	TotalTimeMins float64
	ComputedAt    time.Time
}
