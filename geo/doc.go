// Package geo provides great-circle distance between two points on a
// spherical Earth.
//
// It is the smallest, most numerically pinned component of the pricing
// solver: arc cost, travel time, and therefore every downstream reduced-cost
// and time-window decision trace back to the single Haversine call here.
package geo
