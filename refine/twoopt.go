package refine

// DistanceFunc returns the Euclidean route distance between two node ids.
// Callers derive this from pricegraph arcs via cost/cost_per_km rather than
// recomputing haversine, so the metric matches the arcs the search already
// reasoned about.
type DistanceFunc func(a, b string) float64

// TwoOpt performs deterministic first-improvement 2-opt on the interior
// customer sequence of a closed route, origin fixed at both ends.
type TwoOpt struct {
	dist DistanceFunc
}

// NewTwoOpt builds a TwoOpt refiner using dist to score candidate moves.
func NewTwoOpt(dist DistanceFunc) *TwoOpt {
	return &TwoOpt{dist: dist}
}

// Reorder runs first-improvement 2-opt over path's interior (path[1:len-1]),
// restarting the sweep after every accepted reversal, until a full sweep
// finds no improvement. path must be closed: path[0] == path[len(path)-1].
//
// Complexity: O(iters * k^2) distance lookups, k = number of interior
// customers; each lookup is O(1) against a precomputed id-keyed matrix, so
// no matrix rebuild is needed across reversals.
func (t *TwoOpt) Reorder(path []string) []string {
	tour := make([]string, len(path))
	copy(tour, path)

	n := len(tour) - 1 // tour[0] == tour[n] == origin
	if n < 3 {
		// Fewer than 2 interior customers: nothing to reorder.
		return tour
	}

	index := make(map[string]int, n)
	for _, node := range tour[:n] {
		if _, seen := index[node]; !seen {
			index[node] = len(index)
		}
	}

	d, err := newDense(len(index), len(index))
	if err != nil {
		return tour
	}
	for u, ui := range index {
		for v, vi := range index {
			if u != v {
				d.set(ui, vi, t.dist(u, v))
			}
		}
	}
	dist := func(u, v string) float64 { return d.at(index[u], index[v]) }

	for {
		improved := false
		for i := 1; i < n-1 && !improved; i++ {
			for j := i + 1; j < n && !improved; j++ {
				a, b := tour[i-1], tour[i]
				c, e := tour[j], tour[(j+1)%n]
				delta := dist(a, c) + dist(b, e) - dist(a, b) - dist(c, e)
				if delta < -1e-9 {
					reverseArcInPlace(tour, i, j)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return tour
}

// reverseArcInPlace reverses the inclusive segment tour[i..j], keeping the
// closing vertex at tour[len(tour)-1] intact.
// Complexity: O(j-i) time, O(1) space.
func reverseArcInPlace(tour []string, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}
