package oracle

import "time"

// Location is one entry of the payload's merged warehouse+customer list.
// Warehouses carry only id/lat/lng; customers additionally carry their
// window and demand. Fields are omitted via omitempty so a warehouse entry
// serializes without the customer-only fields.
type Location struct {
	ID          string     `json:"id"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	WindowStart *time.Time `json:"window_start,omitempty"`
	WindowEnd   *time.Time `json:"window_end,omitempty"`
	Capacity    *float64   `json:"capacity,omitempty"`
}

// Penalties mirrors model.Penalties for the wire payload.
type Penalties struct {
	WaitingPerMinute     float64 `json:"waiting_per_minute"`
	LateArrivalPerMinute float64 `json:"late_arrival_per_minute"`
	LateServicePerMinute float64 `json:"late_service_per_minute"`
}

// Payload is the JSON document written to the oracle's temp input file.
//
// Locations always carries every known warehouse and customer, not just
// those on path: the list is built once per solve and forwarded unfiltered
// on every call, so the calculator's penalty model keeps its full view of
// the network.
type Payload struct {
	Locations              []Location `json:"locations"`
	Path                   []string   `json:"path"`
	Departure              string     `json:"departure"`
	CostPerKm              float64    `json:"cost_per_km"`
	SpeedKmh               float64    `json:"speed_kmh"`
	ServiceMinutes         int        `json:"service_minutes"`
	MaxCapacity            float64    `json:"max_capacity"`
	MaxStops               uint       `json:"max_stops"`
	AllowViolateTimeWindow bool       `json:"allow_violate_time_window"`
	Penalties              Penalties  `json:"penalties"`
}

// response is the oracle's stdout shape. Only total_cost is required; any
// other field the oracle emits is ignored.
type response struct {
	TotalCost *float64 `json:"total_cost"`
}
