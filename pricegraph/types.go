package pricegraph

import (
	"errors"
	"sync"

	"github.com/appsaprinsky/rustv2executables-pricing/model"
)

// Sentinel errors. Never wrap these with fmt.Errorf inside the package;
// wrap with %w only at a calling boundary that needs extra context.
var (
	// ErrEmptyNodeID indicates an empty string was used as a node id.
	ErrEmptyNodeID = errors.New("pricegraph: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("pricegraph: node not found")

	// ErrSelfArc indicates an attempt to add an arc from a node to itself.
	ErrSelfArc = errors.New("pricegraph: self arcs are not allowed")

	// ErrWarehouseArc indicates an attempt to add a warehouse-to-warehouse
	// arc; a route never travels depot to depot.
	ErrWarehouseArc = errors.New("pricegraph: warehouse-to-warehouse arcs are not allowed")
)

// Arc is a directed edge u->v carrying the three scalars the search reads.
type Arc struct {
	From string
	To   string

	// Cost is cost_per_km * haversine(u,v); monetary, non-negative.
	Cost float64

	// TravelTime is round_to_minutes(60*haversine(u,v)/speed_kmh), truncated
	// toward zero.
	TravelTime int

	// ReducedCost is Cost minus the destination customer's dual value, or
	// Cost unchanged when the destination is a warehouse.
	ReducedCost float64
}

// Graph is a thread-safe directed arc set over warehouse/customer nodes.
//
// muNode guards nodes; muArc guards adjacency. Two locks rather than one:
// node reads never contend with arc insertion, even though a solve's graph
// is built once and then read-only for its remaining lifetime.
type Graph struct {
	muNode sync.RWMutex
	muArc  sync.RWMutex

	nodes     map[string]model.Kind
	adjacency map[string][]Arc // from -> arcs, kept sorted by To
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]model.Kind),
		adjacency: make(map[string][]Arc),
	}
}
