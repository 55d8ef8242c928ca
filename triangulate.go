package rhodix

import (
	"fmt"
	"math"

	"github.com/rclancey/earcut"
)

// areaTolerance is the relative difference allowed between a polygon's area and the summed area
// of its triangles
const areaTolerance = 1e-6

// Triangulate partitions a polygon with holes into triangles covering exactly the polygon minus
// its holes. Polygons with fewer than three outer points produce no triangles. Rings may touch
// themselves at a vertex. Polygons with no area left after the holes, and output that does not
// cover the polygon, such as for crossing rings, yield ErrUnsupportedGeometry.
func Triangulate(p PolygonWithHoles) ([]Triangle, error) {
	if len(p.Outer) < 3 {
		return nil, nil
	}
	for _, hole := range p.Holes {
		if len(hole) < 3 {
			return nil, fmt.Errorf("%w: hole of %d points", ErrUnsupportedGeometry, len(hole))
		}
	}
	want := LoopArea(p.Outer)
	for _, hole := range p.Holes {
		want -= LoopArea(hole)
	}
	if want <= 0 {
		return nil, fmt.Errorf("%w: no area left (%v)", ErrUnsupportedGeometry, want)
	}

	// Flatten rings; earcut marks each hole by the index of its first vertex
	coords := make([]float64, 0, 2*len(p.Outer))
	var holeIndices []int
	for _, pt := range p.Outer {
		coords = append(coords, pt.X, pt.Y)
	}
	for _, hole := range p.Holes {
		holeIndices = append(holeIndices, len(coords)/2)
		for _, pt := range hole {
			coords = append(coords, pt.X, pt.Y)
		}
	}

	indices, err := earcut.Earcut(coords, holeIndices, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedGeometry, err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d triangle indices", ErrUnsupportedGeometry, len(indices))
	}

	vertex := func(i int) Point { return Point{coords[2*i], coords[2*i+1]} }
	var (
		triangles []Triangle
		covered   float64
	)
	for i := 0; i < len(indices); i += 3 {
		tri := ExactTriangle{vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2])}
		area := tri.Area()
		if area == 0 {
			continue
		}
		covered += area
		triangles = append(triangles, &tri)
	}

	if math.Abs(covered-want) > areaTolerance*max(1, want) {
		return nil, fmt.Errorf("%w: triangles cover %v of %v", ErrUnsupportedGeometry, covered, want)
	}
	return triangles, nil
}

// Triangulate rebuilds the triangles of every sector from its current walls. A sector whose
// polygons cannot all be triangulated is left with no triangles.
func (l *Level) Triangulate() {
	logger.Println("Triangulating sectors ...")

	failed := 0
	for _, sec := range l.Sectors {
		sec.Triangles = nil
		if len(sec.Walls) <= 0 {
			continue
		}
		for _, poly := range ClassifyLoops(sec.LineLoops()) {
			tris, err := Triangulate(poly)
			if err != nil {
				logger.Printf("sector %v (%v): %v", sec.Index, sec.Tag, err)
				sec.Triangles = nil
				failed++
				break
			}
			sec.Triangles = append(sec.Triangles, tris...)
		}
	}
	logger.Printf("Triangulated %v sectors, %v failed", len(l.Sectors)-failed, failed)
}
