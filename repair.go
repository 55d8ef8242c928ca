package rhodix

import "golang.org/x/exp/slices"

// RepairReport summarises a RepairLoops pass
type RepairReport struct {
	ClosedLoops int
	Borrowed    int   // walls moved from one sector to another
	Unclosed    []int // indices of sectors left with an open walk
}

// RepairLoops walks every sector's walls into closed loops. When a walk dead-ends, the walls
// incident to the dead-end vertex are searched for one whose side belongs to a sector with the
// same identity (see Identity); that side is moved to the sector being walked and the walk
// continues. Sectors are processed in order and each move is visible to later sectors.
//
// A walk that still cannot close leaves the sector marked as not Closed. This is not an error.
func (l *Level) RepairLoops() RepairReport {
	logger.Println("Repairing sector loops ...")

	var report RepairReport
	visited := make([]bool, len(l.Walls))
	for _, sec := range l.Sectors {
		sec.Loops, sec.Closed = 0, true
		if len(sec.Walls) <= 0 {
			continue
		}

		clear(visited)
		for {
			first := firstUnvisited(sec, visited)
			if first == nil {
				break
			}

			// Take next line loop
			cur := first
			for {
				visited[cur.Index] = true
				cur.Flags |= WallFound

				next := sec.nextWall(cur, first, func(w *Wall) bool { return visited[w.Index] })
				if next == nil {
					// Sector is not closed here, try to find a remapped wall
					next = l.borrowWall(sec, cur.GetV2(sec), visited)
					if next != nil {
						report.Borrowed++
					}
				}
				if next == nil {
					sec.Closed = false
					break
				}
				if next == first {
					sec.Loops++
					break
				}
				cur = next
			}
		}

		report.ClosedLoops += sec.Loops
		if !sec.Closed {
			logger.Printf("sector %v (%v) is not closed, but has %v closed loops", sec.Index, sec.Tag, sec.Loops)
			report.Unclosed = append(report.Unclosed, sec.Index)
		}
	}
	logger.Printf("Closed %v loops, borrowed %v walls, %v sectors left open",
		report.ClosedLoops, report.Borrowed, len(report.Unclosed))

	return report
}

func firstUnvisited(sec *Sector, visited []bool) *Wall {
	for _, w := range sec.Walls {
		if !visited[w.Index] {
			return w
		}
	}
	return nil
}

// nextWall finds the wall of s continuing from cur: the first wall in s.Walls whose start, as
// seen from s, is cur's end. Walls already visited are skipped, except first, which closes the
// loop.
func (s *Sector) nextWall(cur, first *Wall, visited func(*Wall) bool) *Wall {
	end := cur.GetV2(s)
	for _, w := range s.Walls {
		if w.GetV1(s) != end {
			continue
		}
		if w == first || !visited(w) {
			return w
		}
	}
	return nil
}

// borrowWall looks for an unvisited wall, not yet owned by sec, with a side starting at v whose
// sector shares sec's identity. Candidates are taken in wall order, front side first. The side
// found is transferred to sec.
func (l *Level) borrowWall(sec *Sector, v *Vertex, visited []bool) *Wall {
	self := l.identity[sec.Index]
	for _, w := range v.Walls {
		if visited[w.Index] || w.ownedBy(sec) {
			continue
		}
		for _, side := range [2]*Side{w.Front, w.Back} {
			if side == nil || side.V1 != v || l.identity[side.Sector.Index] != self {
				continue
			}
			l.transferSide(side, sec)
			return w
		}
	}
	return nil
}

// transferSide moves side, and with it one membership of its wall, from its sector to s
func (l *Level) transferSide(side *Side, s *Sector) {
	from := side.Sector
	if i := slices.Index(from.Walls, side.Wall); i >= 0 {
		from.Walls = slices.Delete(from.Walls, i, i+1)
	}
	side.Sector = s
	s.Walls = append(s.Walls, side.Wall)
}
