package oracle

import "errors"

// Sentinel errors. All are non-fatal to the caller: a failed oracle call
// drops the candidate and the search continues.
var (
	// ErrExecFailed indicates the oracle process could not be started or
	// exited with a non-zero status.
	ErrExecFailed = errors.New("oracle: execution failed")

	// ErrMalformedOutput indicates the oracle's stdout was not valid JSON.
	ErrMalformedOutput = errors.New("oracle: malformed output")

	// ErrMissingTotalCost indicates the oracle's stdout JSON had no
	// total_cost field.
	ErrMissingTotalCost = errors.New("oracle: missing total_cost in output")
)
