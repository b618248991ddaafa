// Package oracle calls the external trip-cost calculator that scores a
// finalized route under the full, non-reduced cost model (distance plus
// waiting/late-arrival/late-service penalties).
//
// The protocol is JSON over a temp file: the payload is written to disk,
// the calculator binary is invoked with --input <file>, and its stdout is
// parsed for a total_cost field. A non-zero exit or a missing field is a
// non-fatal per-candidate failure; the caller drops the candidate and the
// search continues.
package oracle
