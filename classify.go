package rhodix

import (
	"github.com/peterstace/simplefeatures/geom"
	"github.com/peterstace/simplefeatures/rtree"
	"golang.org/x/exp/slices"
)

// PolygonWithHoles is an outer boundary and the loops cut out of it. Holes are stored in the
// reverse order of the loop they came from.
type PolygonWithHoles struct {
	Outer []Point
	Holes [][]Point
}

// ClassifyLoops partitions loops, expected largest first, into outer polygons and holes. A loop
// whose area overlaps an outer polygon already found becomes a hole of the first such polygon;
// any other loop starts a new outer polygon.
func ClassifyLoops(loops [][]Point) []PolygonWithHoles {
	var (
		polygons []PolygonWithHoles
		shapes   []geom.Polygon
		valid    []bool
		index    rtree.RTree
	)
	for _, loop := range loops {
		shape, ok := loopPolygon(loop)
		owner := -1
		if ok {
			var candidates []int
			err := index.RangeSearch(loopBox(loop), func(recordID int) error {
				candidates = append(candidates, recordID)
				return nil
			})
			if err != nil {
				logger.Printf("outer polygon search failed: %v", err)
			}
			slices.Sort(candidates)
			for _, c := range candidates {
				if valid[c] && overlaps(shapes[c], shape) {
					owner = c
					break
				}
			}
		}

		if owner >= 0 {
			hole := slices.Clone(loop)
			slices.Reverse(hole)
			polygons[owner].Holes = append(polygons[owner].Holes, hole)
			continue
		}

		polygons = append(polygons, PolygonWithHoles{Outer: loop})
		shapes = append(shapes, shape)
		valid = append(valid, ok)
		if ok {
			index.Insert(loopBox(loop), len(polygons)-1)
		}
	}
	return polygons
}

// loopPolygon converts a loop to a polygon without validating it. Loops of fewer than three
// points have no area and cannot overlap anything.
func loopPolygon(loop []Point) (geom.Polygon, bool) {
	ring, err := loopRing(loop, geom.DisableAllValidations)
	if err != nil {
		return geom.Polygon{}, false
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring}, geom.DisableAllValidations)
	if err != nil {
		return geom.Polygon{}, false
	}
	return poly, true
}

// loopRing builds a closed ring from a loop
func loopRing(loop []Point, opts ...geom.ConstructorOption) (geom.LineString, error) {
	if len(loop) < 3 {
		return geom.LineString{}, ErrUnsupportedGeometry
	}
	coords := make([]float64, 0, 2*len(loop)+2)
	for _, p := range loop {
		coords = append(coords, p.X, p.Y)
	}
	coords = append(coords, loop[0].X, loop[0].Y)
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY), opts...)
}

func loopBox(loop []Point) rtree.Box {
	box := rtree.Box{MinX: loop[0].X, MinY: loop[0].Y, MaxX: loop[0].X, MaxY: loop[0].Y}
	for _, p := range loop[1:] {
		box.MinX = min(box.MinX, p.X)
		box.MinY = min(box.MinY, p.Y)
		box.MaxX = max(box.MaxX, p.X)
		box.MaxY = max(box.MaxY, p.Y)
	}
	return box
}

// overlaps reports whether the intersection of a and b has area. Touching boundaries do not
// count.
func overlaps(a, b geom.Polygon) bool {
	inter, err := geom.Intersection(a.AsGeometry(), b.AsGeometry())
	if err != nil {
		logger.Printf("polygon intersection failed: %v", err)
		return false
	}
	return !inter.IsEmpty() && inter.Area() > 0
}
