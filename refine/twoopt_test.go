package refine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// square2D gives each node a fixed (x,y) so distance is plain Euclidean.
func square2D() map[string][2]float64 {
	return map[string][2]float64{
		"W": {0, 0},
		"A": {0, 1},
		"B": {1, 1},
		"C": {1, 0},
		"D": {0.5, 0.5},
	}
}

func euclid(points map[string][2]float64) DistanceFunc {
	return func(a, b string) float64 {
		pa, pb := points[a], points[b]
		dx := pa[0] - pb[0]
		dy := pa[1] - pb[1]
		return math.Sqrt(dx*dx + dy*dy)
	}
}

func routeLength(dist DistanceFunc, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += dist(path[i], path[i+1])
	}
	return total
}

func TestTwoOpt_UncrossesRoute(t *testing.T) {
	points := square2D()
	dist := euclid(points)
	// W -> A -> C -> B -> W crosses; uncrossed order has shorter length.
	crossed := []string{"W", "A", "C", "B", "W"}

	twoOpt := NewTwoOpt(dist)
	refined := twoOpt.Reorder(crossed)

	require.Equal(t, crossed[0], refined[0])
	require.Equal(t, crossed[len(crossed)-1], refined[len(refined)-1])
	require.LessOrEqual(t, routeLength(dist, refined), routeLength(dist, crossed)+1e-9)
}

func TestTwoOpt_PreservesNodeSet(t *testing.T) {
	points := square2D()
	dist := euclid(points)
	path := []string{"W", "A", "B", "C", "D", "W"}

	refined := NewTwoOpt(dist).Reorder(path)

	require.ElementsMatch(t, path, refined)
	require.Equal(t, "W", refined[0])
	require.Equal(t, "W", refined[len(refined)-1])
}

func TestTwoOpt_ShortRouteUnchanged(t *testing.T) {
	points := square2D()
	dist := euclid(points)
	path := []string{"W", "A", "W"}

	refined := NewTwoOpt(dist).Reorder(path)
	require.Equal(t, path, refined)
}
