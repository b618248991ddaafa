package model

import "time"

// Warehouse is a depot: no time window, no demand, no service duration.
type Warehouse struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Customer is a delivery stop with a demand and an absolute UTC time window.
type Customer struct {
	ID          int64     `json:"id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Capacity    float64   `json:"capacity"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

// Penalties weights the trip-cost oracle applies for waiting, late arrival,
// and late service. The pricing core never evaluates these itself; they are
// opaque parameters forwarded verbatim to the oracle payload.
type Penalties struct {
	WaitingPerMinute     float64 `json:"waiting_per_minute"`
	LateArrivalPerMinute float64 `json:"late_arrival_per_minute"`
	LateServicePerMinute float64 `json:"late_service_per_minute"`
}

// Params bundles the scalar configuration of one solve: capacity and stop
// limits, the cost model, the schedule, and the policy gate for post-closure
// route refinement.
type Params struct {
	MaxStops               uint
	MaxCapacity            float64
	CostPerKm              float64
	SpeedKmh               float64
	ServiceTime            int // minutes
	PlanningDate           string
	DepartureHour          uint   // 0-23
	ZoneOffset             string // e.g. "+06:00"; DefaultZoneOffset when empty
	AllowViolateTimeWindow bool
	Penalties              Penalties
}
