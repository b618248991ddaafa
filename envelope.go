package pricing

import "github.com/appsaprinsky/rustv2executables-pricing/model"

// Input is the JSON envelope one solve is invoked with. Customer windows
// are RFC3339 instants; planning_date is a bare "YYYY-MM-DD" calendar date
// combined with departure_hour into the departure instant.
type Input struct {
	PlanningDate           string             `json:"planning_date"`
	Customers              []model.Customer   `json:"customers"`
	Warehouses             []model.Warehouse  `json:"warehouses"`
	DualValues             map[string]float64 `json:"dual_values"`
	MaxStops               uint               `json:"max_stops"`
	MaxCapacity            float64            `json:"max_capacity"`
	CostPerKm              float64            `json:"cost_per_km"`
	SpeedKmh               float64            `json:"speed_kmh"`
	ServiceTime            int                `json:"service_time"`
	DepartureHour          uint               `json:"departure_hour"`
	AllowViolateTimeWindow bool               `json:"allow_violate_time_window"`
	Penalties              model.Penalties    `json:"penalties"`
}

// Params converts the envelope's scalar fields into a model.Params,
// applying zoneOffset as the departure-offset override when non-empty.
func (in *Input) Params(zoneOffset string) model.Params {
	return model.Params{
		MaxStops:               in.MaxStops,
		MaxCapacity:            in.MaxCapacity,
		CostPerKm:              in.CostPerKm,
		SpeedKmh:               in.SpeedKmh,
		ServiceTime:            in.ServiceTime,
		PlanningDate:           in.PlanningDate,
		DepartureHour:          in.DepartureHour,
		ZoneOffset:             zoneOffset,
		AllowViolateTimeWindow: in.AllowViolateTimeWindow,
		Penalties:              in.Penalties,
	}
}

// Result is the output envelope for an improving route. A solve with no
// improving route serializes as JSON null instead.
type Result struct {
	Path        []string `json:"path"`
	ReducedCost float64  `json:"reduced_cost"`
	Cost        float64  `json:"cost"`
	Capacity    float64  `json:"capacity"`
}
