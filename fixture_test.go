package rhodix

import (
	"bytes"
	"encoding/binary"
	"testing"
)

type testSector struct {
	name           string
	floor, ceiling int16
	flags          uint8
	floorSlope     [4]int32
	ceilingSlope   [4]int32
}

type testWall struct {
	x1, y1, x2, y2 int32
	front, back    int16
	flags          uint32
}

func mustWrite(t *testing.T, buf *bytes.Buffer, data any) {
	t.Helper()
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		t.Fatal(err)
	}
}

// buildLevel encodes a level resource from sector and wall descriptions
func buildLevel(t *testing.T, sectors []testSector, walls []testWall) []byte {
	t.Helper()
	var buf bytes.Buffer

	mustWrite(t, &buf, binLevelHeader{
		Magic:      LevelMagic,
		NumWalls:   int32(len(walls)),
		NumSectors: int32(len(sectors)),
	})
	for _, s := range sectors {
		bs := binSector{
			FloorHeight:   s.floor,
			CeilingHeight: s.ceiling,
			Flags:         s.flags,
			FloorSlope:    s.floorSlope,
			CeilingSlope:  s.ceilingSlope,
		}
		copy(bs.Name[:], s.name)
		mustWrite(t, &buf, bs)
	}
	for _, w := range walls {
		mustWrite(t, &buf, binWall{
			V1X: w.x1, V1Y: w.y1,
			V2X: w.x2, V2Y: w.y2,
			FrontSector: w.front,
			BackSector:  w.back,
			Flags:       w.flags,
		})
	}
	return buf.Bytes()
}

// square returns four counter-clockwise walls around (x0,y0)-(x1,y1)
func square(x0, y0, x1, y1 int32, front, back int16) []testWall {
	return []testWall{
		{x0, y0, x1, y0, front, back, uint32(WallComplete)},
		{x1, y0, x1, y1, front, back, uint32(WallComplete)},
		{x1, y1, x0, y1, front, back, uint32(WallComplete)},
		{x0, y1, x0, y0, front, back, uint32(WallComplete)},
	}
}

func decode(t *testing.T, sectors []testSector, walls []testWall) *Level {
	t.Helper()
	level, err := DecodeLevel(buildLevel(t, sectors, walls))
	if err != nil {
		t.Fatalf("DecodeLevel: %v", err)
	}
	return level
}

func totalArea(tris []Triangle) float64 {
	var area float64
	for _, t := range tris {
		for _, tri := range t.Triangles() {
			area += LoopArea(tri[:])
		}
	}
	return area
}
