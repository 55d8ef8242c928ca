package rhodix

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// cString decodes a NUL-terminated, DOS code page 437 string.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// Name26 is the fixed width sector tag field
type Name26 [0x1A]byte

func (n Name26) String() string {
	return cString(n[:])
}

// Name32 is the fixed width archive entry name field
type Name32 [32]byte

func (n Name32) String() string {
	return cString(n[:])
}
