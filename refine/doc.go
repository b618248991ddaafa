// Package refine reorders the interior customer sequence of a closing
// candidate route by first-improvement 2-opt on pure Euclidean route
// length, gated by allow_violate_time_window at the caller.
//
// Only distance is scored: time windows and capacity are not re-checked
// here, which is why the caller gates the refinement behind the violation
// flag; downstream cost evaluation absorbs any violation via penalties.
// Pairwise distances are cached in a small dense float64 matrix so sweeps
// after the first reversal cost no fresh lookups.
package refine
