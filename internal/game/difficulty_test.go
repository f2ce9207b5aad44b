package game

import (
	"testing"
	"time"
)

func TestMultiplierRampAndCap(t *testing.T) {
	p := DefaultParams()

	if got := p.Multiplier(0); got != 1 {
		t.Fatalf("Multiplier(0) = %v, want 1", got)
	}
	if got := p.Multiplier(10); got != 2 {
		t.Fatalf("Multiplier(10) = %v, want 2", got)
	}
	for _, sec := range []int{20, 21, 60, 1000} {
		if got := p.Multiplier(sec); got != 3 {
			t.Fatalf("Multiplier(%d) = %v, want cap 3", sec, got)
		}
	}
}

func TestSpawnIntervalValuesAndFloor(t *testing.T) {
	p := DefaultParams()

	if got := p.SpawnInterval(0); got != 1500*time.Millisecond {
		t.Fatalf("SpawnInterval(0) = %v, want 1.5s", got)
	}
	if got := p.SpawnInterval(10); got != 750*time.Millisecond {
		t.Fatalf("SpawnInterval(10) = %v, want 750ms", got)
	}
	for sec := 0; sec <= 120; sec++ {
		if got := p.SpawnInterval(sec); got < 400*time.Millisecond {
			t.Fatalf("SpawnInterval(%d) = %v, below 400ms floor", sec, got)
		}
	}
}

func TestDifficultyMonotonic(t *testing.T) {
	p := DefaultParams()
	for sec := 1; sec <= 60; sec++ {
		if p.Multiplier(sec) < p.Multiplier(sec-1) {
			t.Fatalf("Multiplier decreased between %d and %d", sec-1, sec)
		}
		if p.SpawnInterval(sec) > p.SpawnInterval(sec-1) {
			t.Fatalf("SpawnInterval increased between %d and %d", sec-1, sec)
		}
	}
}

func TestFallSpeedUnitFollowsMultiplier(t *testing.T) {
	p := DefaultParams()
	for _, sec := range []int{0, 5, 10, 20, 40} {
		if got, want := p.FallSpeedUnit(sec), p.Multiplier(sec); got != want {
			t.Fatalf("FallSpeedUnit(%d) = %v, want %v", sec, got, want)
		}
	}
}
