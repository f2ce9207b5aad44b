// Package physics provides the circle geometry used by the simulation.
package physics

// DistanceSquared returns the squared distance between two points. Use it
// for comparisons to avoid the square root.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles, whose
// center distance equals the radius sum exactly, do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
