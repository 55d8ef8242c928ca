package rhodix

import "math"

type binWall struct {
	Unknown0     [0x0A]byte
	V1X, V1Y     int32
	V2X, V2Y     int32
	FrontSector  int16
	BackSector   int16
	Unknown1     [0x2A]byte
	Flags        uint32
	Unknown2     [2]byte
	FrontTexture int16 // offset into wall textures
	BackTexture  int16
	Unknown3     [4]byte
}

// WallFlags is the wall record flag word. Only the bits below are understood.
type WallFlags uint32

const (
	WallComplete WallFlags = 0x01
	WallFloor    WallFlags = 0x02
	WallCeiling  WallFlags = 0x04 // WallFloor|WallCeiling is a classic two sided wall, WallComplete a one sided wall
	WallFound    WallFlags = 0x0800
)

type Point struct {
	X, Y float64
}

type Vertex struct {
	X, Y  float64
	Walls []*Wall // every wall with an endpoint here, in wall order
}

func (v *Vertex) Point() Point {
	return Point{v.X, v.Y}
}

// Side binds one face of a wall to a sector. V1 and V2 are oriented so that walking V1 to V2
// keeps the sector consistently on one hand.
type Side struct {
	Wall   *Wall
	V1, V2 *Vertex
	Sector *Sector
}

type Wall struct {
	Index        int
	Flags        WallFlags
	V1, V2       *Vertex
	Front, Back  *Side // Either can be nil for a one sided wall
	FrontTexture int
	BackTexture  int
}

// GetSide returns the side facing s, or nil
func (w *Wall) GetSide(s *Sector) *Side {
	if w.Front != nil && w.Front.Sector == s {
		return w.Front
	}
	if w.Back != nil && w.Back.Sector == s {
		return w.Back
	}
	return nil
}

// GetV1 returns the start vertex of the wall as seen from s
func (w *Wall) GetV1(s *Sector) *Vertex {
	if side := w.GetSide(s); side != nil {
		return side.V1
	}
	return w.V1
}

// GetV2 returns the end vertex of the wall as seen from s
func (w *Wall) GetV2(s *Sector) *Vertex {
	if side := w.GetSide(s); side != nil {
		return side.V2
	}
	return w.V2
}

// ownedBy reports whether either side of the wall belongs to s
func (w *Wall) ownedBy(s *Sector) bool {
	return w.GetSide(s) != nil
}

// WallHeights holds the span a wall covers at each endpoint, index 0 at V1 and 1 at V2. For a
// two sided wall the floor span runs between both floors and the ceiling span between both
// ceilings; for a one sided wall top and bottom are equal.
type WallHeights struct {
	TopFloor, BottomFloor     [2]float64
	TopCeiling, BottomCeiling [2]float64
}

// Heights evaluates the floor and ceiling planes of the sectors on both sides at the wall ends
func (w *Wall) Heights() WallHeights {
	var h WallHeights
	for i, v := range [2]*Vertex{w.V1, w.V2} {
		h.TopFloor[i], h.BottomFloor[i] = math.Inf(-1), math.Inf(1)
		h.TopCeiling[i], h.BottomCeiling[i] = math.Inf(-1), math.Inf(1)
		for _, side := range [2]*Side{w.Front, w.Back} {
			if side == nil || side.Sector == nil {
				continue
			}
			f := side.Sector.Floor.ZatPoint(v.X, v.Y)
			c := side.Sector.Ceiling.ZatPoint(v.X, v.Y)
			h.TopFloor[i] = max(h.TopFloor[i], f)
			h.BottomFloor[i] = min(h.BottomFloor[i], f)
			h.TopCeiling[i] = max(h.TopCeiling[i], c)
			h.BottomCeiling[i] = min(h.BottomCeiling[i], c)
		}
	}
	return h
}
