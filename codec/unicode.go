package codec

import (
	"encoding/binary"

	utfstring "github.com/utfkit/utfstring"
)

// UTF8 returns the UTF-8 codec. Decode is strict validation; Encode is the
// canonical representation itself.
func UTF8() Codec { return utf8Codec{} }

type utf8Codec struct{}

func (utf8Codec) Name() string { return "utf-8" }
func (utf8Codec) BOM() []byte  { return []byte{0xEF, 0xBB, 0xBF} }

func (utf8Codec) Decode(b []byte) (*utfstring.String, error) {
	return utfstring.FromUTF8(b)
}

func (utf8Codec) Encode(s *utfstring.String) []byte { return s.Bytes() }

// UTF16LE returns the little-endian UTF-16 codec.
func UTF16LE() Codec {
	return utf16Codec{name: "utf-16le", ord: binary.LittleEndian, bom: []byte{0xFF, 0xFE}}
}

// UTF16BE returns the big-endian UTF-16 codec.
func UTF16BE() Codec {
	return utf16Codec{name: "utf-16be", ord: binary.BigEndian, bom: []byte{0xFE, 0xFF}}
}

type utf16Codec struct {
	name string
	ord  binary.ByteOrder
	bom  []byte
}

func (c utf16Codec) Name() string { return c.name }
func (c utf16Codec) BOM() []byte  { return append([]byte{}, c.bom...) }

func (c utf16Codec) Decode(b []byte) (*utfstring.String, error) {
	if len(b)%2 != 0 {
		return nil, utfstring.Issues{{
			Offset:  len(b) - 1,
			Code:    utfstring.CodeTruncatedSequence,
			Message: "odd byte count for a 16-bit unit stream",
		}}
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = c.ord.Uint16(b[2*i:])
	}
	return utfstring.FromUTF16(units)
}

func (c utf16Codec) Encode(s *utfstring.String) []byte {
	units := s.UTF16()
	out := make([]byte, 2*len(units))
	for i, u := range units {
		c.ord.PutUint16(out[2*i:], u)
	}
	return out
}

// UTF32LE returns the little-endian UTF-32 codec.
func UTF32LE() Codec {
	return utf32Codec{name: "utf-32le", ord: binary.LittleEndian, bom: []byte{0xFF, 0xFE, 0x00, 0x00}}
}

// UTF32BE returns the big-endian UTF-32 codec.
func UTF32BE() Codec {
	return utf32Codec{name: "utf-32be", ord: binary.BigEndian, bom: []byte{0x00, 0x00, 0xFE, 0xFF}}
}

type utf32Codec struct {
	name string
	ord  binary.ByteOrder
	bom  []byte
}

func (c utf32Codec) Name() string { return c.name }
func (c utf32Codec) BOM() []byte  { return append([]byte{}, c.bom...) }

func (c utf32Codec) Decode(b []byte) (*utfstring.String, error) {
	if len(b)%4 != 0 {
		return nil, utfstring.Issues{{
			Offset:  len(b) &^ 3,
			Code:    utfstring.CodeTruncatedSequence,
			Message: "byte count not a multiple of four for a 32-bit unit stream",
		}}
	}
	scalars := make([]uint32, len(b)/4)
	for i := range scalars {
		scalars[i] = c.ord.Uint32(b[4*i:])
	}
	return utfstring.FromUTF32(scalars)
}

func (c utf32Codec) Encode(s *utfstring.String) []byte {
	scalars := s.UTF32()
	out := make([]byte, 4*len(scalars))
	for i, u := range scalars {
		c.ord.PutUint32(out[4*i:], u)
	}
	return out
}
