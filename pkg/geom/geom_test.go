package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"Same point", 3, 4, 3, 4, 0},
		{"Unit x", 0, 0, 1, 0, 1},
		{"Pythagorean triple", 0, 0, 3, 4, 5},
		{"Negative coordinates", -1, -1, 2, 3, 5},
		{"Diagonal", 0, 0, 1, 1, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.ax, tt.ay, tt.bx, tt.by)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected distance %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInRadius(t *testing.T) {
	tests := []struct {
		name              string
		ax, ay, bx, by, r float64
		want              bool
	}{
		{"Inside", 0, 0, 1, 1, 2, true},
		{"Exactly on boundary", 0, 0, 3, 4, 5, true},
		{"Just outside", 0, 0, 3, 4, 4.999, false},
		{"Zero radius same point", 7, 7, 7, 7, 0, true},
		{"Zero radius other point", 7, 7, 7, 8, 0, false},
		{"Negative radius", 0, 0, 0, 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InRadius(tt.ax, tt.ay, tt.bx, tt.by, tt.r)
			if got != tt.want {
				t.Errorf("Expected InRadius=%v, got %v", tt.want, got)
			}
		})
	}
}

// A point is always within any non-negative radius of itself.
func TestInRadiusSelf(t *testing.T) {
	for _, r := range []float64{0, 0.001, 1, 4.5, 100, 1e9} {
		if !InRadius(2.5, -3.5, 2.5, -3.5, r) {
			t.Errorf("Expected point to be in radius %v of itself", r)
		}
	}
}
