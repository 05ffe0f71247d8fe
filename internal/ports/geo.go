package ports

import "route-optimizer-service/internal/domain"

// Contract for computing the distance in kilometers between two points.
type DistanceCalculator interface {
	DistanceKm(a, b domain.Location) float64
}

// Contract for converting a distance into an elapsed travel duration.
type TravelTimeEstimator interface {
	// Minutes of travel needed to cover km kilometers.
	Minutes(km float64) float64
}
