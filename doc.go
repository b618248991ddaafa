// Package pricing is the column-generation pricing subproblem solver for a
// vehicle routing problem with time windows and capacity.
//
// Given warehouses, customers with delivery windows and demands, and a
// vector of dual multipliers from a restricted master LP, it searches for a
// feasible warehouse→customers→same-warehouse route whose reduced cost is
// strictly negative, or reports that none was found.
//
// The pipeline, leaves first:
//
//	geo/        — great-circle (haversine) distance on a spherical Earth
//	model/      — domain types and the W_<id>/C_<id> node-id convention
//	pricegraph/ — directed cost/time/reduced-cost graph over all locations
//	pricer/     — FIFO label-setting search with dominance pruning
//	refine/     — optional 2-opt reordering of a closing route's interior
//	oracle/     — external trip-cost calculator invoked per candidate
//
// This root package wires those pieces for one JSON input envelope; the
// cmd/pricingsolver driver adds the solve subcommand, stdin/stdout plumbing,
// and structured logging around it.
package pricing
