// Package codec provides byte-stream codecs between the Unicode
// transformation formats and utfstring.String, including byte-order-mark
// detection for externally produced data.
package codec

import (
	"bytes"
	"strings"

	utfstring "github.com/utfkit/utfstring"
)

// Codec performs bidirectional transformation between a wire byte stream
// and the validated domain representation.
type Codec interface {
	// Name returns the canonical codec name, e.g. "utf-16le".
	Name() string
	// Decode validates and decodes the byte stream. Errors are
	// utfstring.Issues carrying the offending offset.
	Decode(b []byte) (*utfstring.String, error)
	// Encode renders the text in this codec's wire form, without a BOM.
	Encode(s *utfstring.String) []byte
	// BOM returns the codec's byte-order mark.
	BOM() []byte
}

// Lookup resolves a codec by name. Names are case-insensitive and accept
// both "utf8" and "utf-8" spellings.
func Lookup(name string) (Codec, bool) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "utf8":
		return UTF8(), true
	case "utf16le":
		return UTF16LE(), true
	case "utf16be":
		return UTF16BE(), true
	case "utf32le":
		return UTF32LE(), true
	case "utf32be":
		return UTF32BE(), true
	}
	return nil, false
}

// Detect sniffs a byte-order mark and returns the matching codec together
// with the BOM length to skip. Without a recognizable BOM it defaults to
// UTF-8 with length 0.
func Detect(b []byte) (Codec, int) {
	// 32-bit marks first: the UTF-16LE BOM is a prefix of the UTF-32LE one.
	for _, c := range []Codec{UTF32LE(), UTF32BE(), UTF16LE(), UTF16BE(), UTF8()} {
		if bom := c.BOM(); bytes.HasPrefix(b, bom) {
			return c, len(bom)
		}
	}
	return UTF8(), 0
}

// DecodeAuto detects the encoding from a BOM, skips it, and decodes the rest.
func DecodeAuto(b []byte) (*utfstring.String, Codec, error) {
	c, n := Detect(b)
	s, err := c.Decode(b[n:])
	return s, c, err
}

// EncodeWithBOM renders the text prefixed with the codec's byte-order mark.
func EncodeWithBOM(c Codec, s *utfstring.String) []byte {
	return append(append([]byte{}, c.BOM()...), c.Encode(s)...)
}
