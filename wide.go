//go:build !windows

package utfstring

// WideChar is one unit of the platform wide-character encoding. Outside
// Windows, wchar_t holds a full 32-bit scalar, so WideChar is rune.
type WideChar = rune

func (s *String) encodeWide() []WideChar {
	out := make([]WideChar, 0, s.chars)
	for _, r := range s.encoded {
		out = append(out, r)
	}
	return out
}
