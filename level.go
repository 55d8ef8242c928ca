// Package rhodix decodes Radix: Beyond the Void level data and rebuilds each sector's floor
// area as triangles.
//
// A level resource is a fixed header followed by a table of sector records and a table of wall
// records. Walls reference sectors by index and carry their own endpoint coordinates, so
// vertices are recovered by deduplicating those coordinates. Sector wall sets in shipped levels
// are not always closed; RepairLoops borrows walls from sectors sharing the same heights to
// close them before the floor polygons are extracted and triangulated.
package rhodix

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// LevelMagic is the first four bytes of every level resource
const LevelMagic uint32 = 0xFFFFFEE7

const (
	levelHeaderSize = 0x49
	sectorSize      = 0x8E
	wallSize        = 0x56
)

// Sector record flags
const (
	SectorFloorSlope   = 0x04
	SectorCeilingSlope = 0x08
)

type binLevelHeader struct {
	Magic      uint32
	Unknown0   [0x19]byte
	NumWalls   int32 // 0x1D
	NumSectors int32 // 0x21
	Unknown1   [0x24]byte
}

type binSector struct {
	Unknown0       [2]byte
	Name           Name26
	FloorTexture   int16
	CeilingTexture int16
	FloorHeight    int16
	CeilingHeight  int16
	Unknown1       byte
	Flags          uint8 // 0x25
	FloorSlope     [4]int32
	CeilingSlope   [4]int32
	Unknown2       [0x48]byte
}

type Sector struct {
	Index     int
	Tag       string
	Flags     uint8
	Walls     []*Wall
	Floor     Plane
	Ceiling   Plane
	Triangles []Triangle

	// Set by RepairLoops
	Loops  int  // closed wall loops
	Closed bool // false if any walk could not return to its first wall
}

type Level struct {
	Vertices []*Vertex
	Walls    []*Wall
	Sectors  []*Sector

	identity  []int // sector index -> index of first sector with equal floor and ceiling Z
	vertexMap map[Point]*Vertex
}

// Identity returns the first sector sharing s's floor and ceiling heights, or s itself
func (l *Level) Identity(s *Sector) *Sector {
	return l.Sectors[l.identity[s.Index]]
}

// ReadLevel decodes a level resource and rebuilds sector triangles
func ReadLevel(buf []byte) (*Level, error) {
	level, err := DecodeLevel(buf)
	if err != nil {
		return nil, err
	}
	level.RepairLoops()
	level.Triangulate()
	return level, nil
}

// LoadLevel reads the named level resource from p and decodes it
func LoadLevel(p ResourceProvider, name string) (*Level, error) {
	logger.Printf("Reading Level %v ...", name)
	buf, err := p.ReadResource(name)
	if err != nil {
		return nil, err
	}
	return ReadLevel(buf)
}

// DecodeLevel parses sectors, walls and vertices and links them together. Wall loops are left
// as stored; see RepairLoops.
func DecodeLevel(buf []byte) (*Level, error) {
	logger.Println("Decoding level ...")

	if len(buf) < levelHeaderSize {
		return nil, formatErrorf(int64(len(buf)), "truncated header: %d bytes", len(buf))
	}
	reader := bytes.NewReader(buf)

	// Read header
	var header binLevelHeader
	if err := binary.Read(reader, binary.LittleEndian, &header); err != nil {
		return nil, formatErrorf(0, "reading header: %v", err)
	}
	if header.Magic != LevelMagic {
		return nil, formatErrorf(0, "bad magic %#08x", header.Magic)
	}
	if header.NumWalls < 0 || header.NumSectors < 0 {
		return nil, formatErrorf(0x1D, "negative counts: %d walls, %d sectors", header.NumWalls, header.NumSectors)
	}
	need := int64(levelHeaderSize) + int64(header.NumSectors)*sectorSize + int64(header.NumWalls)*wallSize
	if int64(len(buf)) < need {
		return nil, formatErrorf(int64(len(buf)), "truncated: %d sectors and %d walls need %d bytes, have %d",
			header.NumSectors, header.NumWalls, need, len(buf))
	}
	logger.Printf("numwalls = %v, numsectors = %v", header.NumWalls, header.NumSectors)

	level := &Level{vertexMap: make(map[Point]*Vertex)}

	binSectors := make([]binSector, header.NumSectors)
	if err := binary.Read(reader, binary.LittleEndian, binSectors); err != nil {
		return nil, formatErrorf(levelHeaderSize, "reading sectors: %v", err)
	}
	level.Sectors = level.readSectors(binSectors)
	level.identity = sectorIdentities(level.Sectors)

	binWalls := make([]binWall, header.NumWalls)
	if err := binary.Read(reader, binary.LittleEndian, binWalls); err != nil {
		return nil, formatErrorf(levelHeaderSize+int64(header.NumSectors)*sectorSize, "reading walls: %v", err)
	}
	walls, err := level.readWalls(binWalls, levelHeaderSize+int64(header.NumSectors)*sectorSize)
	if err != nil {
		return nil, err
	}
	level.Walls = walls
	level.vertexMap = nil

	logger.Printf("Read %v vertices", len(level.Vertices))
	return level, nil
}

func (l *Level) readSectors(binSectors []binSector) []*Sector {
	logger.Println("Reading Sectors ...")

	// Translate to canonical
	sectors := make([]*Sector, len(binSectors))
	for i, s := range binSectors {
		sec := &Sector{
			Index: i,
			Tag:   s.Name.String(),
			Flags: s.Flags,
			Floor: Plane{
				Texture: int(s.FloorTexture),
				Z:       float64(s.FloorHeight),
			},
			Ceiling: Plane{
				Texture: int(s.CeilingTexture),
				Z:       float64(s.CeilingHeight),
			},
		}
		if s.Flags&SectorFloorSlope != 0 {
			setSlope(&sec.Floor, s.FloorSlope)
		}
		if s.Flags&SectorCeilingSlope != 0 {
			setSlope(&sec.Ceiling, s.CeilingSlope)
		}
		logger.Printf("sector %v, flags %v%v", sec.Tag, s.Flags, describeSectorFlags(s.Flags))
		sectors[i] = sec
	}
	logger.Printf("Read %v Sectors", len(sectors))

	return sectors
}

func setSlope(p *Plane, c [4]int32) {
	p.HasSlope = true
	p.SlopeA, p.SlopeB, p.SlopeC, p.SlopeD = c[0], c[1], c[2], c[3]
}

func describeSectorFlags(flags uint8) string {
	var names []string
	for j := 0; j < 8; j++ {
		bit := uint8(1) << j
		switch {
		case flags&bit == 0:
		case bit == SectorFloorSlope:
			names = append(names, "floorslope")
		case bit == SectorCeilingSlope:
			names = append(names, "ceilingslope")
		default:
			names = append(names, fmt.Sprintf("unknown:%02X", bit))
		}
	}
	if len(names) == 0 {
		return ""
	}
	return " (" + strings.Join(names, ", ") + ")"
}

// sectorIdentities maps every sector to the first sector with exactly the same floor and
// ceiling heights. Repair uses it to find walls that belong to a duplicate of a sector.
func sectorIdentities(sectors []*Sector) []int {
	type heights struct{ floor, ceiling float64 }
	first := make(map[heights]int, len(sectors))
	identity := make([]int, len(sectors))
	for i, s := range sectors {
		key := heights{s.Floor.Z, s.Ceiling.Z}
		if j, ok := first[key]; ok {
			identity[i] = j
			continue
		}
		first[key] = i
		identity[i] = i
	}
	return identity
}

func (l *Level) readWalls(binWalls []binWall, offset int64) ([]*Wall, error) {
	logger.Println("Reading Walls ...")

	walls := make([]*Wall, len(binWalls))
	for i, w := range binWalls {
		wall := &Wall{
			Index:        i,
			Flags:        WallFlags(w.Flags),
			FrontTexture: int(w.FrontTexture),
			BackTexture:  int(w.BackTexture),
		}
		wall.V1 = l.vertex(float64(w.V1X), float64(w.V1Y), wall)
		wall.V2 = l.vertex(float64(w.V2X), float64(w.V2Y), wall)

		recordOfs := offset + int64(i)*wallSize
		if w.FrontSector >= 0 {
			if int(w.FrontSector) >= len(l.Sectors) {
				return nil, formatErrorf(recordOfs+0x1A, "wall %d: front sector %d out of range", i, w.FrontSector)
			}
			wall.Front = &Side{Wall: wall, V1: wall.V1, V2: wall.V2, Sector: l.Sectors[w.FrontSector]}
			wall.Front.Sector.Walls = append(wall.Front.Sector.Walls, wall)
		}
		if w.BackSector >= 0 {
			if int(w.BackSector) >= len(l.Sectors) {
				return nil, formatErrorf(recordOfs+0x1C, "wall %d: back sector %d out of range", i, w.BackSector)
			}
			wall.Back = &Side{Wall: wall, V1: wall.V2, V2: wall.V1, Sector: l.Sectors[w.BackSector]}
			wall.Back.Sector.Walls = append(wall.Back.Sector.Walls, wall)
		}
		walls[i] = wall
	}
	logger.Printf("Read %v walls", len(walls))

	return walls, nil
}

// vertex returns the vertex at exactly (x, y), creating it on first use, and records w as
// incident to it
func (l *Level) vertex(x, y float64, w *Wall) *Vertex {
	p := Point{x, y}
	v, ok := l.vertexMap[p]
	if !ok {
		v = &Vertex{X: x, Y: y}
		l.vertexMap[p] = v
		l.Vertices = append(l.Vertices, v)
	}
	v.Walls = append(v.Walls, w)
	return v
}
