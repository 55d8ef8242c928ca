package rhodix

import (
	"fmt"
	"io"
)

// PrintSectorTree writes each sector's polygons, holes and triangle count in a clear format
func PrintSectorTree(w io.Writer, l *Level) {
	var printRecursive func(any, string)
	printRecursive = func(member any, prefix string) {
		switch v := member.(type) {
		case *Sector:
			state := "closed"
			if !v.Closed {
				state = "open"
			}
			fmt.Fprintf(w, "%s- sector %d %q: %d walls, %d loops (%s), %d triangles\n",
				prefix, v.Index, v.Tag, len(v.Walls), v.Loops, state, len(v.Triangles))
			for _, poly := range ClassifyLoops(v.LineLoops()) {
				printRecursive(poly, prefix+"   ")
			}
		case PolygonWithHoles:
			fmt.Fprintf(w, "%s- polygon: %d points, area %g\n", prefix, len(v.Outer), LoopArea(v.Outer))
			for _, hole := range v.Holes {
				printRecursive(hole, prefix+"   ")
			}
		case []Point:
			fmt.Fprintf(w, "%s- hole: %d points, area %g\n", prefix, len(v), LoopArea(v))
		}
	}

	for _, sec := range l.Sectors {
		printRecursive(sec, "")
	}
}
