package domain

import "fmt"

// A single delivery order: pick up at the restaurant, drop off at the
// customer. Preparation starts at t=0 when the courier departs the source,
// so the item is ready PrepTimeMins minutes into the route.
type Order struct {
	Restaurant   Location
	Customer     Location
	PrepTimeMins float64
}

// NewOrder validates the preparation duration; the contained locations are
// expected to be built through NewLocation.
func NewOrder(restaurant, customer Location, prepTimeMins float64) (Order, error) {
	if prepTimeMins < 0 {
		return Order{}, fmt.Errorf(
			"new order restaurant=%q: prep=%v: %w",
			restaurant.ID, prepTimeMins, ErrNegativePrepTime,
		)
	}

	return Order{
		Restaurant:   restaurant,
		Customer:     customer,
		PrepTimeMins: prepTimeMins,
	}, nil
}
