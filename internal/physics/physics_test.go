package physics

import "testing"

func TestDistanceSquared(t *testing.T) {
	if got := DistanceSquared(0, 0, 3, 4); got != 25 {
		t.Fatalf("DistanceSquared(0,0,3,4) = %v, want 25", got)
	}
	if got := DistanceSquared(2, 2, 2, 2); got != 0 {
		t.Fatalf("DistanceSquared of identical points = %v, want 0", got)
	}
}

func TestCirclesOverlapIdenticalCenters(t *testing.T) {
	if !CirclesOverlap(10, 10, 1, 10, 10, 1) {
		t.Fatalf("circles with identical centers must overlap")
	}
}

func TestCirclesTouchingIsNotOverlap(t *testing.T) {
	// Center distance 5 equals the radius sum exactly: strict < applies
	if CirclesOverlap(0, 0, 2, 3, 4, 3) {
		t.Fatalf("touching circles must not count as overlapping")
	}
	if !CirclesOverlap(0, 0, 2, 3, 4, 3.01) {
		t.Fatalf("circles closer than the radius sum must overlap")
	}
}

func TestCirclesOverlapSymmetric(t *testing.T) {
	a := CirclesOverlap(0, 0, 2, 3, 1, 2.5)
	b := CirclesOverlap(3, 1, 2.5, 0, 0, 2)
	if a != b {
		t.Fatalf("overlap not symmetric: %v vs %v", a, b)
	}
}
