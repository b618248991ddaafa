package pricer

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors. Never wrapped with fmt.Errorf inside this package; a
// caller wraps with %w only if it needs extra context at its own boundary.
var (
	// ErrInvalidMaxStops indicates Options.MaxStops is zero.
	ErrInvalidMaxStops = errors.New("pricer: max_stops must be at least 1")

	// ErrOriginNotFound indicates a requested starting warehouse id is not
	// a node in the supplied graph.
	ErrOriginNotFound = errors.New("pricer: origin warehouse not found in graph")
)

// Options bundles the scalar configuration of one search run.
type Options struct {
	// Departure is the UTC instant every starting warehouse label begins
	// at: cost 0, time Departure, capacity 0.
	Departure time.Time

	// ServiceTime is the fixed per-customer service duration in minutes.
	ServiceTime int

	// MaxStops is the maximum number of customers on a single route.
	MaxStops uint

	// MaxCapacity is the maximum cumulative demand a route may carry.
	MaxCapacity float64

	// AllowViolateTimeWindow gates the optional 2-opt refinement on a
	// closing candidate's interior customer sequence.
	AllowViolateTimeWindow bool
}

// DefaultOptions returns a minimal configuration. Callers must override
// MaxStops and MaxCapacity; the value exists only so Options can be built
// incrementally.
func DefaultOptions() Options {
	return Options{
		MaxStops:    1,
		ServiceTime: 0,
	}
}

// Result is one improving closed route: origin warehouse, through distinct
// customers, back to the same warehouse.
type Result struct {
	Path        []string
	ReducedCost float64
	Cost        float64
	Capacity    float64
}

// Oracle scores a finalized route with the full, non-reduced cost model.
// Implemented by oracle.Client; kept as an interface here so pricer never
// imports os/exec or a JSON codec.
type Oracle interface {
	Evaluate(ctx context.Context, path []string, departure time.Time) (float64, error)
}

// Refiner reorders the interior (non-warehouse) customer sequence of a
// closed candidate route. path is the full closed route, origin warehouse
// at both ends; the returned slice is also a full closed route over the
// same node set, possibly with its interior permuted. Implemented by
// refine.TwoOpt.
type Refiner interface {
	Reorder(path []string) []string
}
