package services

import (
	"math"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// RouteOptimizer finds the minimum-time visiting order for a batch of orders
// by exhaustively evaluating every precedence-valid candidate path.
//
// The algorithm is exact brute force: candidates are pulled lazily from the
// generator and scored one at a time, keeping the first strictly-smallest
// total seen. It does not prune, parallelize, or approximate; candidate count
// grows as (2N)!/2^N, so callers bound N at the boundary.
//
// All collaborators are stateless and the optimizer holds no per-call state,
// so one instance is safe for concurrent use across requests.
type RouteOptimizer struct {
	paths ports.PathGenerator
	cost  ports.CostEvaluator
	dist  ports.DistanceCalculator
	speed ports.TravelTimeEstimator
}

func NewRouteOptimizer(
	paths ports.PathGenerator,
	cost ports.CostEvaluator,
	dist ports.DistanceCalculator,
	speed ports.TravelTimeEstimator,
) *RouteOptimizer {
	return &RouteOptimizer{
		paths: paths,
		cost:  cost,
		dist:  dist,
		speed: speed,
	}
}

// BestRoute returns the winning path's stop ids (source id first) and its
// total elapsed time in minutes. Inputs are assumed validated upstream:
// well-formed coordinates, non-negative prep times, unique ids.
// With no orders the result is the trivial single-stop path at t=0.
func (o *RouteOptimizer) BestRoute(
	source domain.Location,
	orders []domain.Order,
) ([]string, float64) {
	locations := map[string]domain.Location{source.ID: source}
	prepTimes := make(map[string]float64, len(orders))
	for _, ord := range orders {
		locations[ord.Restaurant.ID] = ord.Restaurant
		locations[ord.Customer.ID] = ord.Customer
		prepTimes[ord.Restaurant.ID] = ord.PrepTimeMins
	}

	travel := o.precomputeTravelTimes(locations)

	bestPath := []string{source.ID}
	bestTime := math.Inf(1)

	for path := range o.paths.ValidPaths(source, orders) {
		total := o.cost.TotalTimeMins(source.ID, path, travel, prepTimes)

		// Strict comparison keeps the first-enumerated candidate on ties,
		// which the generator's fixed ordering makes reproducible.
		if total < bestTime {
			bestTime = total
			bestPath = append([]string{source.ID}, path...)
		}
	}

	if math.IsInf(bestTime, 1) {
		// Unreachable with a conforming generator; kept as a safe default.
		return []string{source.ID}, 0
	}

	return bestPath, bestTime
}

// precomputeTravelTimes builds the full pairwise travel-time matrix once per
// call so each of the (2N)!/2^N evaluations is a pure table walk.
func (o *RouteOptimizer) precomputeTravelTimes(locations map[string]domain.Location) ports.TravelTimes {
	travel := make(ports.TravelTimes, len(locations))
	for aID, a := range locations {
		travel[aID] = make(map[string]float64, len(locations))
		for bID, b := range locations {
			if aID == bID {
				travel[aID][bID] = 0
				continue
			}
			travel[aID][bID] = o.speed.Minutes(o.dist.DistanceKm(a, b))
		}
	}
	return travel
}
