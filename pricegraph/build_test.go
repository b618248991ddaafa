package pricegraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
)

func testParams() model.Params {
	return model.Params{
		CostPerKm: 2.0,
		SpeedKmh:  60.0,
	}
}

func TestBuildGraph_NoWarehouseWarehouseOrSelfArcs(t *testing.T) {
	warehouses := []model.Warehouse{{ID: 1, Lat: 0, Lng: 0}}
	customers := []model.Customer{
		{ID: 1, Lat: 0.1, Lng: 0.1, Capacity: 1},
		{ID: 2, Lat: 0.2, Lng: 0.2, Capacity: 1},
	}

	g, err := BuildGraph(warehouses, customers, nil, testParams())
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount())

	whArcs := g.Arcs("W_1")
	require.Len(t, whArcs, 2)
	for _, a := range whArcs {
		require.NotEqual(t, "W_1", a.To)
	}

	c1Arcs := g.Arcs("C_1")
	require.Len(t, c1Arcs, 2) // -> W_1, -> C_2
	for _, a := range c1Arcs {
		require.NotEqual(t, "C_1", a.To)
	}
}

func TestBuildGraph_ReducedCostAppliesOnlyToCustomerDestinations(t *testing.T) {
	warehouses := []model.Warehouse{{ID: 1, Lat: 0, Lng: 0}}
	customers := []model.Customer{{ID: 5, Lat: 0.1, Lng: 0.1, Capacity: 1}}
	duals := map[string]float64{"5": 3.0}

	g, err := BuildGraph(warehouses, customers, duals, testParams())
	require.NoError(t, err)

	toCustomer := g.Arcs("W_1")[0]
	require.Equal(t, "C_5", toCustomer.To)
	require.InDelta(t, toCustomer.Cost-3.0, toCustomer.ReducedCost, 1e-9)

	toWarehouse := g.Arcs("C_5")[0]
	require.Equal(t, "W_1", toWarehouse.To)
	require.InDelta(t, toWarehouse.Cost, toWarehouse.ReducedCost, 1e-9)
}

func TestBuildGraph_Deterministic(t *testing.T) {
	warehouses := []model.Warehouse{{ID: 2, Lat: 0, Lng: 0}, {ID: 1, Lat: 1, Lng: 1}}
	customers := []model.Customer{
		{ID: 3, Lat: 0.3, Lng: 0.3, Capacity: 1},
		{ID: 1, Lat: 0.1, Lng: 0.1, Capacity: 1},
	}

	g1, err := BuildGraph(warehouses, customers, nil, testParams())
	require.NoError(t, err)
	g2, err := BuildGraph(warehouses, customers, nil, testParams())
	require.NoError(t, err)

	require.Equal(t, g1.Nodes(), g2.Nodes())
	require.Equal(t, g1.Arcs("C_1"), g2.Arcs("C_1"))
}

func TestArcBetween(t *testing.T) {
	warehouses := []model.Warehouse{{ID: 1, Lat: 0, Lng: 0}}
	customers := []model.Customer{
		{ID: 1, Lat: 0.1, Lng: 0.1, Capacity: 1},
		{ID: 2, Lat: 0.2, Lng: 0.2, Capacity: 1},
	}

	g, err := BuildGraph(warehouses, customers, nil, testParams())
	require.NoError(t, err)

	arc, ok := g.ArcBetween("C_1", "C_2")
	require.True(t, ok)
	require.Equal(t, "C_1", arc.From)
	require.Equal(t, "C_2", arc.To)
	require.Greater(t, arc.Cost, 0.0)

	_, ok = g.ArcBetween("C_1", "C_999")
	require.False(t, ok)

	_, ok = g.ArcBetween("W_999", "C_1")
	require.False(t, ok)
}

func TestBuildGraph_ZeroSpeedYieldsZeroTravelTime(t *testing.T) {
	warehouses := []model.Warehouse{{ID: 1, Lat: 0, Lng: 0}}
	customers := []model.Customer{{ID: 1, Lat: 1, Lng: 1, Capacity: 1}}

	params := testParams()
	params.SpeedKmh = 0

	g, err := BuildGraph(warehouses, customers, nil, params)
	require.NoError(t, err)
	require.Equal(t, 0, g.Arcs("W_1")[0].TravelTime)
}
