package rhodix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ArchiveSignature identifies a resource archive, e.g. RADIX.DAT
const ArchiveSignature = "NSRes:Radix"

var (
	ErrBadSignature     = errors.New("rhodix: bad archive signature")
	ErrResourceNotFound = errors.New("rhodix: resource not found")
)

// ResourceProvider supplies named byte ranges. An *Archive is one.
type ResourceProvider interface {
	ReadResource(name string) ([]byte, error)
}

// Archive is the game's resource container: a header, a flat directory of named entries and
// the blobs they point at. It must be closed when the decode session is over.
type Archive struct {
	header    *ArchiveHeader
	r         io.ReaderAt
	closer    io.Closer
	entries   []Entry
	entryNums map[string]int
}

type binArchiveHeader struct {
	Signature    [11]byte
	Unknown0     uint16
	Unknown1     uint32
	NumEntries   uint32
	DirectoryOfs uint32
}

type ArchiveHeader struct {
	NumEntries   int
	DirectoryOfs int
}

type binEntry struct {
	Name     Name32
	Offset   uint32
	Size     uint32
	Unknown0 uint16
	Unknown1 uint32
}

type Entry struct {
	Name   string
	Offset int
	Size   int
}

// OpenArchive opens a resource archive file
func OpenArchive(filename string) (*Archive, error) {
	logger.Printf("Opening archive %v ...", filename)

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	a, err := NewArchive(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	a.closer = file
	return a, nil
}

// NewArchive reads the archive directory from r. The caller keeps ownership of r.
func NewArchive(r io.ReaderAt) (*Archive, error) {
	a := &Archive{r: r}

	// Read header
	var binHeader binArchiveHeader
	hr := io.NewSectionReader(r, 0, int64(binary.Size(binHeader)))
	if err := binary.Read(hr, binary.LittleEndian, &binHeader); err != nil {
		return nil, fmt.Errorf("reading archive header: %w", err)
	}
	if cString(binHeader.Signature[:]) != ArchiveSignature {
		return nil, fmt.Errorf("%w: %q", ErrBadSignature, cString(binHeader.Signature[:]))
	}
	a.header = &ArchiveHeader{int(binHeader.NumEntries), int(binHeader.DirectoryOfs)}

	if err := a.readDirectory(); err != nil {
		return nil, err
	}
	logger.Printf("Read %v archive entries", len(a.entries))
	return a, nil
}

func (a *Archive) readDirectory() error {
	size := int64(a.header.NumEntries) * int64(binary.Size(binEntry{}))
	dr := io.NewSectionReader(a.r, int64(a.header.DirectoryOfs), size)
	binEntries := make([]binEntry, a.header.NumEntries)
	if err := binary.Read(dr, binary.LittleEndian, binEntries); err != nil {
		return fmt.Errorf("reading archive directory: %w", err)
	}

	entryNums := make(map[string]int, len(binEntries))
	entries := make([]Entry, len(binEntries))
	for i, e := range binEntries {
		entries[i] = Entry{Name: e.Name.String(), Offset: int(e.Offset), Size: int(e.Size)}
		key := strings.ToLower(entries[i].Name)
		// First entry wins, as a linear scan would
		if _, ok := entryNums[key]; !ok {
			entryNums[key] = i
		}
	}
	a.entries = entries
	a.entryNums = entryNums
	return nil
}

// Entries returns the archive directory in file order
func (a *Archive) Entries() []Entry {
	return a.entries
}

// Lookup finds an entry by case-insensitive name
func (a *Archive) Lookup(name string) (Entry, bool) {
	i, ok := a.entryNums[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// ReadResource reads an entire named resource to memory
func (a *Archive) ReadResource(name string) ([]byte, error) {
	entry, ok := a.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, name)
	}
	buf := make([]byte, entry.Size)
	n, err := a.r.ReadAt(buf, int64(entry.Offset))
	if n != entry.Size {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("truncated resource %v: %w", name, err)
	}
	return buf, nil
}

// Close releases the underlying file, if the archive opened one
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
