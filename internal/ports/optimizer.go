package ports

import (
	"iter"

	"route-optimizer-service/internal/domain"
)

// TravelTimes holds precomputed pairwise travel durations in minutes,
// keyed by origin id then destination id.
type TravelTimes map[string]map[string]float64

// Contract for enumerating candidate visiting orders.
//
// The returned sequence yields every ordering of the 2N pickup/drop-off stop
// ids that respects pickup-before-drop-off for each order. The source is not
// included in yielded paths. The sequence is lazy and restartable: ranging
// over it again re-runs the enumeration in the same deterministic order.
type PathGenerator interface {
	ValidPaths(source domain.Location, orders []domain.Order) iter.Seq[[]string]
}

// Contract for computing the total elapsed time of one candidate path.
type CostEvaluator interface {
	// TotalTimeMins simulates the courier along path starting at sourceID
	// with the clock at zero. prepTimes is keyed by restaurant id; arriving
	// there earlier than the prep time means waiting until the item is ready.
	TotalTimeMins(sourceID string, path []string, travel TravelTimes, prepTimes map[string]float64) float64
}

// Contract for the optimization engine consumed by the HTTP layer.
type RouteFinder interface {
	// BestRoute returns the minimum-time visiting order (source id first)
	// and its total elapsed time in minutes. Input is assumed validated.
	BestRoute(source domain.Location, orders []domain.Order) ([]string, float64)
}
