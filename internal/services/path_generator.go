package services

import (
	"iter"

	"route-optimizer-service/internal/domain"
)

// InterleavedPathGenerator enumerates candidate visiting orders by recursively
// interleaving the N precedence-ordered pickup/drop-off pairs.
//
// At each position the candidate stops are considered in ascending order
// index: an order's restaurant if not yet visited, otherwise its customer if
// the restaurant has been visited. This visits every precedence-valid
// ordering exactly once — (2N)!/2^N sequences — without generating the
// 2^N-times-larger set of raw permutations and discarding the invalid ones.
//
// The enumeration order is a pure function of the order slice, so repeated
// runs over identical input produce identical sequences and downstream
// tie-breaks are reproducible.
type InterleavedPathGenerator struct{}

func NewInterleavedPathGenerator() *InterleavedPathGenerator {
	return &InterleavedPathGenerator{}
}

// ValidPaths returns a lazy, restartable sequence of stop-id orderings.
// The source is never part of a yielded path; callers prepend it.
// With no orders the sequence contains exactly one empty ordering.
func (g *InterleavedPathGenerator) ValidPaths(
	source domain.Location,
	orders []domain.Order,
) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		n := len(orders)
		pickedUp := make([]bool, n)
		delivered := make([]bool, n)
		prefix := make([]string, 0, 2*n)

		// walk reports false once a consumer stops the iteration.
		var walk func(placed int) bool
		walk = func(placed int) bool {
			if placed == 2*n {
				out := make([]string, len(prefix))
				copy(out, prefix)
				return yield(out)
			}

			for i := 0; i < n; i++ {
				switch {
				case !pickedUp[i]:
					pickedUp[i] = true
					prefix = append(prefix, orders[i].Restaurant.ID)
					ok := walk(placed + 1)
					prefix = prefix[:len(prefix)-1]
					pickedUp[i] = false
					if !ok {
						return false
					}
				case !delivered[i]:
					delivered[i] = true
					prefix = append(prefix, orders[i].Customer.ID)
					ok := walk(placed + 1)
					prefix = prefix[:len(prefix)-1]
					delivered[i] = false
					if !ok {
						return false
					}
				}
			}

			return true
		}

		walk(0)
	}
}
