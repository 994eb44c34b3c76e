package utfstring

import (
	"sync"
	"unicode/utf16"
)

// String is one immutable piece of text held canonically as validated UTF-8.
//
// A String is built by one of the decoding constructors (New, FromUTF8,
// FromUTF16, FromUTF32) and never changes afterwards; every accessor is a
// pure function of the canonical bytes. Values must be passed by pointer.
type String struct {
	encoded string // validated UTF-8, no terminator
	chars   int    // code point count, fixed at construction

	wideOnce sync.Once
	wide     []WideChar
}

// New builds a String from a Go string after verifying it is well-formed
// UTF-8. A NUL byte terminates the text; bytes beyond it are ignored.
func New(s string) (*String, error) {
	end, chars, iss := scanUTF8(s)
	if iss != nil {
		return nil, iss
	}
	return &String{encoded: s[:end], chars: chars}, nil
}

// FromUTF8 builds a String from UTF-8 encoded bytes. The bytes are copied,
// so later mutation of b does not affect the result.
func FromUTF8(b []byte) (*String, error) {
	return New(string(b))
}

// FromUTF16 builds a String from UTF-16 code units, combining surrogate
// pairs into single scalars. A zero unit terminates the text. Any unpaired
// surrogate fails with Issues.
func FromUTF16(u []uint16) (*String, error) {
	encoded, chars, iss := decodeUTF16(u)
	if iss != nil {
		return nil, iss
	}
	return &String{encoded: encoded, chars: chars}, nil
}

// FromUTF32 builds a String from 32-bit scalar values, one per code point.
// A zero element terminates the text. Surrogate and out-of-range values fail
// with Issues.
func FromUTF32(u []uint32) (*String, error) {
	encoded, chars, iss := decodeUTF32(u)
	if iss != nil {
		return nil, iss
	}
	return &String{encoded: encoded, chars: chars}, nil
}

// String returns the canonical UTF-8 text. O(1), no allocation.
func (s *String) String() string { return s.encoded }

// Bytes returns a fresh copy of the canonical UTF-8 bytes.
func (s *String) Bytes() []byte { return []byte(s.encoded) }

// UTF16 returns a freshly allocated sequence of UTF-16 code units, using
// surrogate pairs for scalars at or above 0x10000.
func (s *String) UTF16() []uint16 {
	return utf16.Encode([]rune(s.encoded))
}

// UTF32 returns a freshly allocated sequence of 32-bit scalar values, one
// per code point.
func (s *String) UTF32() []uint32 {
	out := make([]uint32, 0, s.chars)
	for _, r := range s.encoded {
		out = append(out, uint32(r))
	}
	return out
}

// Runes returns the code points as a rune slice.
func (s *String) Runes() []rune { return []rune(s.encoded) }

// Wide returns the text in the platform wide-character form (see WideChar).
// The buffer is computed on first call and cached for the life of the value;
// concurrent first calls are safe. Callers must not modify the returned
// slice.
func (s *String) Wide() []WideChar {
	s.wideOnce.Do(func() { s.wide = s.encodeWide() })
	return s.wide
}

// NumChars returns the number of Unicode code points. O(1).
func (s *String) NumChars() int { return s.chars }

// NumBytes returns the length of the canonical UTF-8 form in bytes. O(1).
func (s *String) NumBytes() int { return len(s.encoded) }
