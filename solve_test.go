package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
)

type fixedOracle struct {
	cost  float64
	calls int
}

func (f *fixedOracle) Evaluate(_ context.Context, _ []string, _ time.Time) (float64, error) {
	f.calls++
	return f.cost, nil
}

func testInput() *Input {
	return &Input{
		PlanningDate: "2026-03-15",
		Warehouses:   []model.Warehouse{{ID: 1, Lat: 0, Lng: 0}},
		Customers: []model.Customer{{
			ID: 7, Lat: 0.0899, Lng: 0, Capacity: 3,
			WindowStart: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			WindowEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		}},
		DualValues:    map[string]float64{"7": 100},
		MaxStops:      3,
		MaxCapacity:   50,
		CostPerKm:     1,
		SpeedKmh:      60,
		ServiceTime:   5,
		DepartureHour: 8,
	}
}

func TestSolver_ImprovingRoute(t *testing.T) {
	orc := &fixedOracle{cost: 42}
	s := &Solver{Oracle: orc}

	res, err := s.Solve(context.Background(), testInput())
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Equal(t, []string{"W_1", "C_7", "W_1"}, res.Path)
	require.Negative(t, res.ReducedCost)
	require.InDelta(t, -80, res.ReducedCost, 1.0)
	require.Equal(t, 42.0, res.Cost)
	require.InDelta(t, 3, res.Capacity, 1e-9)
	require.Positive(t, orc.calls)
}

func TestSolver_NoImprovingRoute(t *testing.T) {
	in := testInput()
	in.DualValues = nil // pure distance cost, never negative

	s := &Solver{Oracle: &fixedOracle{cost: 1}}

	res, err := s.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestSolver_Deterministic(t *testing.T) {
	s := &Solver{Oracle: &fixedOracle{cost: 9}}

	first, err := s.Solve(context.Background(), testInput())
	require.NoError(t, err)
	second, err := s.Solve(context.Background(), testInput())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSolver_InvalidSpeed(t *testing.T) {
	in := testInput()
	in.SpeedKmh = 0

	s := &Solver{Oracle: &fixedOracle{}}

	_, err := s.Solve(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestSolver_InvalidMaxStops(t *testing.T) {
	in := testInput()
	in.MaxStops = 0

	s := &Solver{Oracle: &fixedOracle{}}

	_, err := s.Solve(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidMaxStops)
}

func TestSolver_InvalidPlanningDate(t *testing.T) {
	in := testInput()
	in.PlanningDate = "not-a-date"

	s := &Solver{Oracle: &fixedOracle{}}

	_, err := s.Solve(context.Background(), in)
	require.ErrorIs(t, err, model.ErrInvalidDeparture)
}

// Departure is anchored at +06:00: an 08:00 departure is 02:00 UTC, so a
// window closing at 02:05 UTC is only reachable with a short travel time.
func TestSolver_DepartureOffsetIsAppliedToWindows(t *testing.T) {
	in := testInput()
	in.Customers[0].Lat = 0.001 // ~111m, 0 travel minutes
	in.Customers[0].WindowStart = time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC)
	in.Customers[0].WindowEnd = time.Date(2026, 3, 15, 2, 5, 0, 0, time.UTC)
	in.ServiceTime = 5

	s := &Solver{Oracle: &fixedOracle{cost: 5}}

	res, err := s.Solve(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, res)

	// One more service minute can no longer finish inside the window.
	in.ServiceTime = 6
	res, err = s.Solve(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, res)
}
