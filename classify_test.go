package rhodix

import (
	"slices"
	"testing"
)

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestClassifyLoops(t *testing.T) {
	t.Run("enclosed loop is a hole", func(t *testing.T) {
		outer, inner := rect(0, 0, 10, 10), rect(3, 3, 8, 8)
		polys := ClassifyLoops([][]Point{outer, inner})
		if len(polys) != 1 {
			t.Fatalf("got %d polygons, want 1", len(polys))
		}
		if len(polys[0].Holes) != 1 {
			t.Fatalf("got %d holes, want 1", len(polys[0].Holes))
		}
		want := slices.Clone(inner)
		slices.Reverse(want)
		if !slices.Equal(polys[0].Holes[0], want) {
			t.Errorf("hole %v, want reversed loop %v", polys[0].Holes[0], want)
		}
	})

	t.Run("disjoint loops are separate polygons", func(t *testing.T) {
		polys := ClassifyLoops([][]Point{rect(0, 0, 10, 10), rect(20, 0, 25, 5)})
		if len(polys) != 2 || len(polys[0].Holes) != 0 || len(polys[1].Holes) != 0 {
			t.Errorf("got %+v, want two polygons without holes", polys)
		}
	})

	t.Run("touching loops are separate polygons", func(t *testing.T) {
		polys := ClassifyLoops([][]Point{rect(0, 0, 10, 10), rect(10, 0, 15, 5)})
		if len(polys) != 2 {
			t.Errorf("got %d polygons, want 2", len(polys))
		}
	})

	t.Run("overlapping bounding boxes only", func(t *testing.T) {
		// An L shaped outer whose box covers the small square, which sits in the notch
		l := []Point{{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}}
		polys := ClassifyLoops([][]Point{l, rect(6, 6, 9, 9)})
		if len(polys) != 2 {
			t.Errorf("got %d polygons, want 2", len(polys))
		}
	})

	t.Run("first enclosing polygon wins", func(t *testing.T) {
		a, b := rect(0, 0, 10, 10), rect(20, 0, 30, 10)
		spanning := rect(8, 2, 22, 4)
		polys := ClassifyLoops([][]Point{a, b, spanning})
		if len(polys) != 2 || len(polys[0].Holes) != 1 || len(polys[1].Holes) != 0 {
			t.Errorf("got %+v, want the hole on the first polygon", polys)
		}
	})

	t.Run("degenerate loops become polygons", func(t *testing.T) {
		polys := ClassifyLoops([][]Point{rect(0, 0, 10, 10), {{1, 1}, {2, 2}}})
		if len(polys) != 2 {
			t.Errorf("got %d polygons, want 2", len(polys))
		}
	})

	t.Run("nested outers", func(t *testing.T) {
		polys := ClassifyLoops([][]Point{rect(0, 0, 10, 10), rect(2, 2, 8, 8), rect(4, 4, 6, 6)})
		if len(polys) != 1 || len(polys[0].Holes) != 2 {
			t.Errorf("got %+v, want both inner loops as holes of the outer", polys)
		}
	})
}
