package rhodix

import "golang.org/x/exp/slices"

type TriangleType int

const (
	TriangleExact TriangleType = iota
	TriangleFan
)

// Triangle is one piece of a sector's floor area. Most pieces are ExactTriangles; a piece with
// more than three points is a Fan around its centre.
type Triangle interface {
	TriangleType() TriangleType
	Points() []Point
	Center() Point
	Triangles() [][3]Point
}

type ExactTriangle [3]Point

type Fan struct {
	Centre Point
	Ring   []Point
}

// NewTriangle returns an ExactTriangle for three points and a Fan otherwise
func NewTriangle(points ...Point) Triangle {
	if len(points) == 3 {
		return &ExactTriangle{points[0], points[1], points[2]}
	}
	return &Fan{Centre: centroid(points), Ring: points}
}

func (t *ExactTriangle) TriangleType() TriangleType {
	return TriangleExact
}

// Points returns a copy of the corners
func (t *ExactTriangle) Points() []Point {
	return []Point{t[0], t[1], t[2]}
}

func (t *ExactTriangle) Center() Point {
	return centroid(t[:])
}

func (t *ExactTriangle) Triangles() [][3]Point {
	return [][3]Point{*t}
}

// Area is the unsigned area of the triangle
func (t *ExactTriangle) Area() float64 {
	return LoopArea(t[:])
}

func (f *Fan) TriangleType() TriangleType {
	return TriangleFan
}

func (f *Fan) Points() []Point {
	return slices.Clone(f.Ring)
}

func (f *Fan) Center() Point {
	return f.Centre
}

// Triangles fans the ring around the centre
func (f *Fan) Triangles() [][3]Point {
	if len(f.Ring) < 2 {
		return nil
	}
	tris := make([][3]Point, len(f.Ring))
	for i, p := range f.Ring {
		tris[i] = [3]Point{f.Centre, p, f.Ring[(i+1)%len(f.Ring)]}
	}
	return tris
}

func centroid(points []Point) Point {
	var c Point
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(points))
	c.Y /= float64(len(points))
	return c
}
