package geo

import (
	"fmt"
	"math"

	"route-optimizer-service/internal/domain"
)

// DefaultEarthRadiusKm is the mean Earth radius used when no override is
// configured.
const DefaultEarthRadiusKm = 6371.0

// HaversineDistance computes great-circle distances on a sphere of a fixed
// radius. It is stateless and safe for concurrent use.
type HaversineDistance struct {
	radiusKm float64
}

// NewHaversineDistance validates the radius once at construction; a
// non-positive radius is a configuration error.
func NewHaversineDistance(radiusKm float64) (*HaversineDistance, error) {
	if radiusKm <= 0 {
		return nil, fmt.Errorf("new haversine distance: radius must be positive, got %v", radiusKm)
	}
	return &HaversineDistance{radiusKm: radiusKm}, nil
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
// Symmetric in its arguments and zero for coincident points.
func (h *HaversineDistance) DistanceKm(a, b domain.Location) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	hav := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push hav a hair outside [0, 1]; clamp before Sqrt/Asin
	// so antipodal and coincident points never produce NaN.
	hav = math.Min(1, math.Max(0, hav))

	return 2 * h.radiusKm * math.Asin(math.Sqrt(hav))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
