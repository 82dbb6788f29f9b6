// Package geom provides the distance and radius primitives shared by every
// proximity check in the battle simulation.
package geom

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return math.Sqrt(dx*dx + dy*dy)
}

// InRadius reports whether point b lies within radius r of point a.
// The boundary is inclusive: Distance == r counts as inside.
func InRadius(ax, ay, bx, by, r float64) bool {
	if r < 0 {
		return false
	}
	dx := bx - ax
	dy := by - ay
	return dx*dx+dy*dy <= r*r
}
