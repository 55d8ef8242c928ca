package rhodix

import (
	"cmp"
	"math"

	"golang.org/x/exp/slices"
)

// LineLoops walks the sector's walls into ordered point loops, one point (the start vertex as
// seen from the sector) per wall. Walls are never borrowed here. Loops come out largest area
// first, so the outer boundary usually leads and holes follow.
func (s *Sector) LineLoops() [][]Point {
	var loops [][]Point
	visited := make(map[int]bool, len(s.Walls))
	isVisited := func(w *Wall) bool { return visited[w.Index] }

	for {
		var first *Wall
		for _, w := range s.Walls {
			if !visited[w.Index] {
				first = w
				break
			}
		}
		if first == nil {
			break
		}

		var loop []Point
		for cur := first; cur != nil; {
			visited[cur.Index] = true
			loop = append(loop, cur.GetV1(s).Point())
			next := s.nextWall(cur, first, isVisited)
			if next == first {
				break
			}
			cur = next
		}
		loops = append(loops, loop)
	}

	if n := len(loops); n > 0 && len(loops[n-1]) == 0 {
		loops = loops[:n-1]
	}

	slices.SortStableFunc(loops, func(a, b []Point) int {
		return cmp.Compare(LoopArea(b), LoopArea(a))
	})
	return loops
}

// LoopArea is the unsigned shoelace area of a closed point loop
func LoopArea(loop []Point) float64 {
	return math.Abs(signedArea(loop))
}

// signedArea is positive for counter-clockwise loops
func signedArea(loop []Point) float64 {
	var sum float64
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
