//go:build windows

package utfstring

import "unicode/utf16"

// WideChar is one unit of the platform wide-character encoding. On Windows,
// wchar_t is a 16-bit UTF-16 code unit.
type WideChar = uint16

func (s *String) encodeWide() []WideChar {
	return utf16.Encode([]rune(s.encoded))
}
