package rhodix

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGeometry is returned by Triangulate for polygons it cannot partition, such as
// self-intersecting rings or holes crossing the outer boundary.
var ErrUnsupportedGeometry = errors.New("rhodix: unsupported geometry")

// FormatError reports a level buffer that cannot be decoded
type FormatError struct {
	Offset int64 // byte offset of the offending field
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("rhodix: invalid level at %#x: %s", e.Offset, e.Reason)
}

func formatErrorf(offset int64, format string, args ...any) error {
	return &FormatError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
