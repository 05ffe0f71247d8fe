package services

import "route-optimizer-service/internal/ports"

// TimeCostEvaluator computes the true elapsed time of one candidate path by
// simulating the courier stop by stop.
//
// The courier departs the source at t=0. Arriving at a restaurant before its
// prep time means waiting until the item is ready; drop-offs never wait.
// The evaluator is pure: it reads the precomputed travel matrix and mutates
// nothing, so the optimizer may invoke it once per candidate without
// coordination.
type TimeCostEvaluator struct{}

func NewTimeCostEvaluator() *TimeCostEvaluator {
	return &TimeCostEvaluator{}
}

func (e *TimeCostEvaluator) TotalTimeMins(
	sourceID string,
	path []string,
	travel ports.TravelTimes,
	prepTimes map[string]float64,
) float64 {
	currentTime := 0.0
	currentID := sourceID

	for _, nextID := range path {
		arrival := currentTime + travel[currentID][nextID]

		// Departure from a pickup is the later of arrival and readiness.
		if prep, ok := prepTimes[nextID]; ok && prep > arrival {
			currentTime = prep
		} else {
			currentTime = arrival
		}

		currentID = nextID
	}

	return currentTime
}
