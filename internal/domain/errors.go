package domain

import "errors"

// Validation sentinels surfaced by entity constructors. Callers match on
// these with errors.Is; the HTTP layer maps any of them to a client error.
var (
	ErrEmptyLocationID  = errors.New("location id must be non-empty")
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180]")
	ErrNegativePrepTime = errors.New("prep time must be non-negative")
)
