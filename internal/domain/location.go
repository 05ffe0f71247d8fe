package domain

import "fmt"

// Immutable geographic point identified by a request-scoped id.
// Identifiers are unique within a single optimization request.
type Location struct {
	ID  string
	Lat float64
	Lon float64
}

// NewLocation validates coordinates at construction time so downstream
// components can assume well-formed input and skip defensive checks.
func NewLocation(id string, lat, lon float64) (Location, error) {
	if id == "" {
		return Location{}, fmt.Errorf("new location: %w", ErrEmptyLocationID)
	}
	if lat < -90 || lat > 90 {
		return Location{}, fmt.Errorf("new location %q: lat=%v: %w", id, lat, ErrInvalidLatitude)
	}
	if lon < -180 || lon > 180 {
		return Location{}, fmt.Errorf("new location %q: lon=%v: %w", id, lon, ErrInvalidLongitude)
	}

	return Location{ID: id, Lat: lat, Lon: lon}, nil
}
