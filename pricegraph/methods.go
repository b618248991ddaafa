package pricegraph

import (
	"sort"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
)

// AddNode inserts a node with the given id and kind. Idempotent: re-adding
// the same id is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, kind model.Kind) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil
	}
	g.nodes[id] = kind

	g.muArc.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muArc.Unlock()

	return nil
}

// HasNode reports whether id is a known node.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Kind returns the kind of node id, or an error if it does not exist.
func (g *Graph) Kind(id string) (model.Kind, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	k, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	return k, nil
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// AddArc inserts a directed arc from->to with the given scalars.
//
// Rejects self-arcs and warehouse-to-warehouse arcs. Both endpoints must
// already exist as nodes.
// Complexity: O(d), d = current out-degree of from: an O(log d) search for
// the slot, then a shift of the later arcs (keeps adjacency sorted by To for
// deterministic iteration).
func (g *Graph) AddArc(from, to string, cost float64, travelTime int, reducedCost float64) error {
	if from == to {
		return ErrSelfArc
	}

	fromKind, err := g.Kind(from)
	if err != nil {
		return err
	}
	toKind, err := g.Kind(to)
	if err != nil {
		return err
	}
	if fromKind == model.KindWarehouse && toKind == model.KindWarehouse {
		return ErrWarehouseArc
	}

	arc := Arc{From: from, To: to, Cost: cost, TravelTime: travelTime, ReducedCost: reducedCost}

	g.muArc.Lock()
	defer g.muArc.Unlock()

	arcs := g.adjacency[from]
	idx := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= to })
	arcs = append(arcs, Arc{})
	copy(arcs[idx+1:], arcs[idx:])
	arcs[idx] = arc
	g.adjacency[from] = arcs

	return nil
}

// Arcs returns the outgoing arcs of from, sorted by destination id. The
// returned slice is a defensive copy; callers may not mutate the graph's
// internal state through it.
// Complexity: O(d) time/space, d = out-degree of from.
func (g *Graph) Arcs(from string) []Arc {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	src := g.adjacency[from]
	out := make([]Arc, len(src))
	copy(out, src)
	return out
}

// ArcBetween returns the arc from->to and whether it exists.
// Complexity: O(log d), d = out-degree of from.
func (g *Graph) ArcBetween(from, to string) (Arc, bool) {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	arcs := g.adjacency[from]
	idx := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= to })
	if idx < len(arcs) && arcs[idx].To == to {
		return arcs[idx], true
	}
	return Arc{}, false
}

// Nodes returns all node ids, sorted for deterministic iteration.
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
