package pricegraph

import (
	"sort"

	"github.com/appsaprinsky/rustv2executables-pricing/geo"
	"github.com/appsaprinsky/rustv2executables-pricing/model"
)

// point pairs a node id with its coordinates for internal iteration only.
type point struct {
	id  string
	loc geo.Point
}

// BuildGraph constructs the exhaustive directed arc set over warehouses and
// customers: every warehouse<->customer pair in both directions, and every
// ordered customer->customer pair. Warehouse-to-warehouse and self arcs are
// never emitted.
//
// duals is keyed by the textual numeric suffix of a customer node id (e.g.
// "42" for "C_42"); a missing entry is treated as dual 0.
//
// Input slices are sorted by ID before arcs are built so that, for identical
// input sets, the resulting adjacency order is deterministic regardless of
// caller iteration order.
func BuildGraph(warehouses []model.Warehouse, customers []model.Customer, duals map[string]float64, params model.Params) (*Graph, error) {
	w := make([]model.Warehouse, len(warehouses))
	copy(w, warehouses)
	sort.Slice(w, func(i, j int) bool { return w[i].ID < w[j].ID })

	c := make([]model.Customer, len(customers))
	copy(c, customers)
	sort.Slice(c, func(i, j int) bool { return c[i].ID < c[j].ID })

	g := NewGraph()
	points := make([]point, 0, len(w)+len(c))

	for _, wh := range w {
		id := model.WarehouseNodeID(wh.ID)
		if err := g.AddNode(id, model.KindWarehouse); err != nil {
			return nil, err
		}
		points = append(points, point{id: id, loc: geo.Point{Lat: wh.Lat, Lng: wh.Lng}})
	}
	for _, cu := range c {
		id := model.CustomerNodeID(cu.ID)
		if err := g.AddNode(id, model.KindCustomer); err != nil {
			return nil, err
		}
		points = append(points, point{id: id, loc: geo.Point{Lat: cu.Lat, Lng: cu.Lng}})
	}

	byID := make(map[string]point, len(points))
	for _, p := range points {
		byID[p.id] = p
	}

	addPair := func(from, to point) error {
		dist := geo.Haversine(from.loc, to.loc)
		cost := params.CostPerKm * dist

		travelTime := 0
		if params.SpeedKmh > 0 {
			travelTime = int(60 * dist / params.SpeedKmh)
		}

		reducedCost := cost
		if model.IsCustomerNode(to.id) {
			reducedCost = cost - duals[model.NodeIDSuffix(to.id)]
		}

		return g.AddArc(from.id, to.id, cost, travelTime, reducedCost)
	}

	for _, wh := range w {
		whID := model.WarehouseNodeID(wh.ID)
		whPt := byID[whID]
		for _, cu := range c {
			cuPt := byID[model.CustomerNodeID(cu.ID)]
			if err := addPair(whPt, cuPt); err != nil {
				return nil, err
			}
			if err := addPair(cuPt, whPt); err != nil {
				return nil, err
			}
		}
	}

	for _, from := range c {
		fromPt := byID[model.CustomerNodeID(from.ID)]
		for _, to := range c {
			if from.ID == to.ID {
				continue
			}
			toPt := byID[model.CustomerNodeID(to.ID)]
			if err := addPair(fromPt, toPt); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
