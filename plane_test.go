package rhodix

import (
	"math"
	"testing"
)

func TestPlaneZatPoint(t *testing.T) {
	points := [][2]float64{{0, 0}, {5.7, -3.2}, {-1e6, 1e6}, {-0.5, 0.5}, {math.MaxInt32, 12}}

	t.Run("flat", func(t *testing.T) {
		p := Plane{Z: 42}
		for _, pt := range points {
			if got := p.ZatPoint(pt[0], pt[1]); got != 42 {
				t.Errorf("ZatPoint(%v, %v) = %v, want 42", pt[0], pt[1], got)
			}
		}
	})

	t.Run("level slope", func(t *testing.T) {
		p := Plane{Z: 42, HasSlope: true, SlopeB: 1}
		for _, pt := range points {
			if got := p.ZatPoint(pt[0], pt[1]); got != 0 {
				t.Errorf("ZatPoint(%v, %v) = %v, want 0", pt[0], pt[1], got)
			}
		}
	})

	for _, tc := range []struct {
		name       string
		a, b, c, d int32
		x, y       float64
		want       float64
	}{
		{"truncates x before multiplying", 1, 1, 0, 0, 5.7, 0, -5},
		{"truncates toward zero", 1, 1, 0, 0, -5.7, 0, 5},
		{"uses c for y", 0, 1, 2, 0, 100, 3.9, -6},
		{"offset", 0, 4, 0, -64, 0, 0, 16},
		{"integer division", 1, 2, 0, 0, 3, 0, -1},
		{"zero b keeps z", 1, 0, 1, 1, 3, 3, 42},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := Plane{Z: 42, HasSlope: true, SlopeA: tc.a, SlopeB: tc.b, SlopeC: tc.c, SlopeD: tc.d}
			if got := p.ZatPoint(tc.x, tc.y); got != tc.want {
				t.Errorf("ZatPoint(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}
