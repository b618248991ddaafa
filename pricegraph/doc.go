// Package pricegraph builds the directed cost/time/reduced-cost graph the
// label-setting search (pricer) runs over: every node is a warehouse or a
// customer, every warehouse↔customer pair gets an arc in both directions,
// and every ordered pair of distinct customers gets one. Warehouse-to-
// warehouse arcs and self arcs are never built.
//
// Graph itself is a thread-safe adjacency container: separate locks for
// node and arc mutation, adjacency kept sorted by destination id so that
// identical inputs always yield identical iteration order.
package pricegraph
