package pricer

import (
	"context"
	"log/slog"
	"time"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
	"github.com/appsaprinsky/rustv2executables-pricing/pricegraph"
)

// label is one forward-search state: accumulated reduced cost, the instant
// the vehicle is free at its last node, cumulative demand delivered, and
// the full path from the origin warehouse. Paths are copied on extension
// (simple, quadratic in path length) rather than parent-pointer-linked;
// path lengths here are bounded by max_stops+2.
type label struct {
	cost     float64
	arrival  time.Time
	capacity float64
	path     []string
}

// Solve runs the label-setting ESPP-RC search independently over each
// origin in warehouseIDs, in the given order, and returns the single best
// improving closed route found across all of them, or nil if none improves
// on reduced cost 0.
//
// customers must map every customer node id appearing in g to its
// model.Customer record; g is expected to have been built by
// pricegraph.BuildGraph over the same customers and warehouses.
//
// Frontier discipline is FIFO: a plain slice-backed queue, append on push,
// reslice-from-front on pop. This ordering is part of the contract; a
// different discipline would change which labels survive dominance.
func Solve(ctx context.Context, g *pricegraph.Graph, customers map[string]model.Customer, warehouseIDs []string, opts Options, refiner Refiner, oracle Oracle, logger *slog.Logger) (*Result, error) {
	if opts.MaxStops < 1 {
		return nil, ErrInvalidMaxStops
	}
	if logger == nil {
		logger = slog.Default()
	}

	var best *Result
	bestReducedCost := 0.0 // only strictly negative candidates qualify

	for _, origin := range warehouseIDs {
		if !g.HasNode(origin) {
			return nil, ErrOriginNotFound
		}

		store := newDominanceStore()
		frontier := []label{{
			cost:     0,
			arrival:  opts.Departure,
			capacity: 0,
			path:     []string{origin},
		}}

		for len(frontier) > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			cur := frontier[0]
			frontier = frontier[1:]

			u := cur.path[len(cur.path)-1]
			for _, arc := range g.Arcs(u) {
				v := arc.To

				// 1. Reject returning to a non-origin warehouse.
				if model.IsWarehouseNode(v) && v != origin {
					continue
				}

				isClosing := v == origin
				isCustomer := model.IsCustomerNode(v)

				// 2. Elementarity and stop budget.
				if isCustomer {
					if uint(customerCount(cur.path)) >= opts.MaxStops {
						continue
					}
					if contains(cur.path, v) {
						continue
					}
				}

				// 3. Arrival time.
				arrival := cur.arrival.Add(time.Duration(arc.TravelTime) * time.Minute)
				capacity := cur.capacity

				// 4. Time-window feasibility, only for customer destinations.
				if isCustomer {
					cust := customers[v]
					if arrival.Before(cust.WindowStart) {
						arrival = cust.WindowStart
					}
					if arrival.After(cust.WindowEnd) {
						continue
					}
					serviceEnd := arrival.Add(time.Duration(opts.ServiceTime) * time.Minute)
					if serviceEnd.After(cust.WindowEnd) {
						continue
					}
					capacity += cust.Capacity
					if capacity > opts.MaxCapacity {
						continue
					}
					arrival = serviceEnd
				}

				// 5. Accumulate reduced cost, form the extended path.
				newCost := cur.cost + arc.ReducedCost
				newPath := make([]string, len(cur.path)+1)
				copy(newPath, cur.path)
				newPath[len(cur.path)] = v

				// 6. Closure check.
				if isClosing && customerCount(cur.path) >= 1 {
					if newCost < bestReducedCost {
						finalPath := newPath
						if opts.AllowViolateTimeWindow && refiner != nil {
							finalPath = refiner.Reorder(newPath)
						}
						cost, err := oracle.Evaluate(ctx, finalPath, opts.Departure)
						if err != nil {
							logger.Warn("pricer: oracle evaluation failed, dropping candidate",
								"reduced_cost", newCost, "error", err)
						} else {
							bestReducedCost = newCost
							best = &Result{
								Path:        finalPath,
								ReducedCost: newCost,
								Cost:        cost,
								Capacity:    capacity,
							}
						}
					}
					continue // a closing label is never extended further
				}

				// 7. Dominance check.
				state := resourceState{cost: newCost, arrival: arrival, capacity: capacity}
				if !store.admit(v, state) {
					continue
				}
				frontier = append(frontier, label{
					cost:     newCost,
					arrival:  arrival,
					capacity: capacity,
					path:     newPath,
				})
			}
		}
	}

	return best, nil
}

func customerCount(path []string) int {
	n := 0
	for _, node := range path {
		if model.IsCustomerNode(node) {
			n++
		}
	}
	return n
}

func contains(path []string, node string) bool {
	for _, p := range path {
		if p == node {
			return true
		}
	}
	return false
}
