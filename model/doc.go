// Package model defines the domain types shared by every other package in
// this solver: warehouses, customers, penalty weights, and the node-id
// convention (W_<id> / C_<id>) that the search branches on.
//
// Nothing here is concurrency-sensitive; these are plain value types decoded
// once from the input envelope and shared read-only for the lifetime of a
// solve.
package model
