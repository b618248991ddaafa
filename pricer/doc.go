// Package pricer implements the resource-constrained elementary shortest
// path search at the heart of the solver: a FIFO-frontier forward label
// search over a pricegraph.Graph that looks for a closed warehouse-origin
// route whose summed reduced cost is strictly negative.
//
// Each starting warehouse runs an independent session over shared read-only
// graph data. Labels track (reduced cost, free-at time, delivered demand,
// path); a new label is pruned when a retained label at the same node is no
// worse on all three resources. The dominance key deliberately ignores the
// visited-customer set, so the search is a heuristic, not an exact solver.
//
// pricer never imports os/exec or a JSON codec directly: the trip-cost
// oracle and the 2-opt refinement step are reached through the narrow
// Oracle and Refiner interfaces defined in types.go, kept deliberately thin
// so this package's only real dependencies are pricegraph and model.
package pricer
