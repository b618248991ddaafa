package model

import (
	"errors"
	"fmt"
	"time"
)

// DefaultZoneOffset is the fixed local offset the departure instant is
// anchored to when Params.ZoneOffset is empty. Customer windows are absolute
// UTC instants; only the departure construction uses this offset.
const DefaultZoneOffset = "+06:00"

// ErrInvalidDeparture indicates PlanningDate/DepartureHour/ZoneOffset do not
// combine into a parseable RFC3339 instant.
var ErrInvalidDeparture = errors.New("model: invalid departure instant")

// DepartureUTC derives the route departure instant: PlanningDate at
// DepartureHour o'clock sharp in the configured zone offset, converted to
// UTC. PlanningDate must be "YYYY-MM-DD"; DepartureHour must be 0-23.
func (p Params) DepartureUTC() (time.Time, error) {
	if p.DepartureHour > 23 {
		return time.Time{}, ErrInvalidDeparture
	}
	offset := p.ZoneOffset
	if offset == "" {
		offset = DefaultZoneOffset
	}

	stamp := fmt.Sprintf("%sT%02d:00:00%s", p.PlanningDate, p.DepartureHour, offset)
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeparture, stamp)
	}

	return t.UTC(), nil
}
