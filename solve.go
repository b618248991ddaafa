package pricing

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
	"github.com/appsaprinsky/rustv2executables-pricing/oracle"
	"github.com/appsaprinsky/rustv2executables-pricing/pricegraph"
	"github.com/appsaprinsky/rustv2executables-pricing/pricer"
	"github.com/appsaprinsky/rustv2executables-pricing/refine"
)

// Sentinel errors for infeasible configurations, caught before any graph
// work starts.
var (
	// ErrInvalidSpeed indicates speed_kmh is zero or negative.
	ErrInvalidSpeed = errors.New("pricing: speed_kmh must be > 0")

	// ErrInvalidMaxStops indicates max_stops is zero.
	ErrInvalidMaxStops = errors.New("pricing: max_stops must be at least 1")
)

// Solver wires the full pipeline for one input envelope: graph construction,
// the label-setting search, optional 2-opt refinement, and trip-cost
// evaluation of each candidate closure.
//
// The zero value is not usable: OracleBinary (or Oracle) must be set.
// A Solver is stateless across Solve calls and safe to reuse.
type Solver struct {
	// OracleBinary is the trip-cost calculator executable invoked per
	// candidate route.
	OracleBinary string

	// ZoneOffset overrides the departure instant's fixed local offset when
	// non-empty; see model.DefaultZoneOffset.
	ZoneOffset string

	// Oracle, when non-nil, replaces the external binary entirely. Used by
	// tests and by callers embedding their own cost model.
	Oracle pricer.Oracle

	// Logger receives non-fatal diagnostics (oracle failures, solve
	// summary lines). Defaults to slog.Default().
	Logger *slog.Logger
}

// Solve searches in for a feasible warehouse-to-same-warehouse route with
// strictly negative reduced cost. A nil Result with a nil error means no
// improving route exists under the exploration policy, which is a normal
// outcome, not a failure.
func (s *Solver) Solve(ctx context.Context, in *Input) (*Result, error) {
	if in.SpeedKmh <= 0 {
		return nil, ErrInvalidSpeed
	}
	if in.MaxStops < 1 {
		return nil, ErrInvalidMaxStops
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	params := in.Params(s.ZoneOffset)
	departure, err := params.DepartureUTC()
	if err != nil {
		return nil, err
	}

	g, err := pricegraph.BuildGraph(in.Warehouses, in.Customers, in.DualValues, params)
	if err != nil {
		return nil, err
	}

	customers := make(map[string]model.Customer, len(in.Customers))
	for _, cust := range in.Customers {
		customers[model.CustomerNodeID(cust.ID)] = cust
	}

	warehouseIDs := make([]string, 0, len(in.Warehouses))
	for _, wh := range in.Warehouses {
		warehouseIDs = append(warehouseIDs, model.WarehouseNodeID(wh.ID))
	}
	sort.Strings(warehouseIDs)

	orc := s.Oracle
	if orc == nil {
		orc = s.newOracleClient(in, logger)
	}

	// The 2-opt metric recovers plain distance from the already-built arcs
	// instead of recomputing haversine, so refinement and search agree on
	// every pairwise distance. A missing arc scores +Inf and is never
	// chosen by a reversal.
	dist := func(a, b string) float64 {
		arc, ok := g.ArcBetween(a, b)
		if !ok {
			return math.Inf(1)
		}
		return arc.Cost / in.CostPerKm
	}

	opts := pricer.DefaultOptions()
	opts.Departure = departure
	opts.ServiceTime = in.ServiceTime
	opts.MaxStops = in.MaxStops
	opts.MaxCapacity = in.MaxCapacity
	opts.AllowViolateTimeWindow = in.AllowViolateTimeWindow

	res, err := pricer.Solve(ctx, g, customers, warehouseIDs, opts, refine.NewTwoOpt(dist), orc, logger)
	if err != nil {
		return nil, err
	}
	if res == nil {
		logger.Info("solve finished: no improving route",
			"warehouses", len(in.Warehouses), "customers", len(in.Customers))
		return nil, nil
	}

	logger.Info("solve finished: improving route found",
		"reduced_cost", res.ReducedCost, "stops", len(res.Path)-2)

	return &Result{
		Path:        res.Path,
		ReducedCost: res.ReducedCost,
		Cost:        res.Cost,
		Capacity:    res.Capacity,
	}, nil
}

// newOracleClient builds the per-solve trip-cost client. Locations carries
// every warehouse and customer, not just those on a candidate path.
func (s *Solver) newOracleClient(in *Input, logger *slog.Logger) *oracle.Client {
	locations := make([]oracle.Location, 0, len(in.Warehouses)+len(in.Customers))
	for _, wh := range in.Warehouses {
		locations = append(locations, oracle.Location{
			ID:  model.WarehouseNodeID(wh.ID),
			Lat: wh.Lat,
			Lng: wh.Lng,
		})
	}
	for _, cust := range in.Customers {
		ws, we, demand := cust.WindowStart, cust.WindowEnd, cust.Capacity
		locations = append(locations, oracle.Location{
			ID:          model.CustomerNodeID(cust.ID),
			Lat:         cust.Lat,
			Lng:         cust.Lng,
			WindowStart: &ws,
			WindowEnd:   &we,
			Capacity:    &demand,
		})
	}

	return &oracle.Client{
		BinaryPath:             s.OracleBinary,
		Locations:              locations,
		CostPerKm:              in.CostPerKm,
		SpeedKmh:               in.SpeedKmh,
		ServiceMinutes:         in.ServiceTime,
		MaxCapacity:            in.MaxCapacity,
		MaxStops:               in.MaxStops,
		AllowViolateTimeWindow: in.AllowViolateTimeWindow,
		Penalties: oracle.Penalties{
			WaitingPerMinute:     in.Penalties.WaitingPerMinute,
			LateArrivalPerMinute: in.Penalties.LateArrivalPerMinute,
			LateServicePerMinute: in.Penalties.LateServicePerMinute,
		},
		Logger: logger,
	}
}
