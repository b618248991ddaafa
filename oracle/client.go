package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Client evaluates finalized routes against an external trip-cost
// calculator binary. One Client is built per solve and reused across every
// candidate closure the search finds; Locations, the cost model, and the
// penalty weights are fixed for the lifetime of a solve.
type Client struct {
	BinaryPath             string
	Locations              []Location
	CostPerKm              float64
	SpeedKmh               float64
	ServiceMinutes         int
	MaxCapacity            float64
	MaxStops               uint
	AllowViolateTimeWindow bool
	Penalties              Penalties

	// Logger receives one line per subprocess run, tagged with a per-call
	// correlation id: a warning on failure or an info line on success.
	// Failures before the subprocess starts are returned without logging.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Evaluate scores path (a closed W...W route) departing at departure. A
// non-nil error means the candidate must be dropped, never retried; the
// search continues unaffected.
//
// Complexity: dominated by the subprocess invocation; this method performs
// O(len(Locations)+len(path)) encoding work around it.
func (c *Client) Evaluate(ctx context.Context, path []string, departure time.Time) (float64, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	correlationID := uuid.NewString()

	payload := Payload{
		Locations:              c.Locations,
		Path:                   path,
		Departure:              departure.Format(time.RFC3339),
		CostPerKm:              c.CostPerKm,
		SpeedKmh:               c.SpeedKmh,
		ServiceMinutes:         c.ServiceMinutes,
		MaxCapacity:            c.MaxCapacity,
		MaxStops:               c.MaxStops,
		AllowViolateTimeWindow: c.AllowViolateTimeWindow,
		Penalties:              c.Penalties,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("oracle: encode payload %s: %w", correlationID, err)
	}

	tmp, err := os.CreateTemp("", "pricing-oracle-"+correlationID+"-*.json")
	if err != nil {
		return 0, fmt.Errorf("oracle: create input file %s: %w", correlationID, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("oracle: write input file %s: %w", correlationID, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("oracle: close input file %s: %w", correlationID, err)
	}

	cmd := exec.CommandContext(ctx, c.BinaryPath, "--input", tmp.Name())
	stdout, err := cmd.Output()
	if err != nil {
		logger.Warn("oracle: invocation failed", "correlation_id", correlationID, "error", err)
		return 0, fmt.Errorf("%w: %s: %v", ErrExecFailed, correlationID, err)
	}

	var resp response
	if err := json.Unmarshal(stdout, &resp); err != nil {
		logger.Warn("oracle: malformed output", "correlation_id", correlationID, "error", err)
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedOutput, correlationID, err)
	}
	if resp.TotalCost == nil {
		logger.Warn("oracle: missing total_cost", "correlation_id", correlationID)
		return 0, fmt.Errorf("%w: %s", ErrMissingTotalCost, correlationID)
	}

	logger.Info("oracle: invocation succeeded", "correlation_id", correlationID, "total_cost", *resp.TotalCost)
	return *resp.TotalCost, nil
}
