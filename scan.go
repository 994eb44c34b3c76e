package utfstring

import (
	"fmt"
	"unicode/utf8"
)

const (
	surrMin = 0xD800 // first high surrogate
	surrMid = 0xDC00 // first low surrogate
	surrMax = 0xDFFF // last low surrogate

	maxScalar = 0x10FFFF
)

func issueAt(off int, code, msg, hint string) Issues {
	return Issues{{Offset: off, Code: code, Message: msg, Hint: hint}}
}

// scanUTF8 walks s up to the first NUL byte (or the end) verifying strict
// UTF-8 well-formedness. It returns the index one past the last validated
// byte and the number of code points seen, or the Issues describing the
// first violation.
//
// Strictness follows RFC 3629: sequences are minimal-form only, surrogate
// code points and scalars above 0x10FFFF are rejected rather than replaced.
func scanUTF8(s string) (end, chars int, iss Issues) {
	i := 0
	for i < len(s) && s[i] != 0 {
		c := s[i]
		if c < 0x80 {
			i++
			chars++
			continue
		}
		// First-byte ranges, with tightened bounds on the first
		// continuation byte where the lead alone cannot rule out
		// overlong, surrogate, or out-of-range forms.
		var size int
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case c < 0xC0:
			return i, chars, issueAt(i, CodeInvalidByte,
				"continuation byte where a sequence must start", hexByte(c))
		case c < 0xC2:
			// 0xC0/0xC1 can only produce two-byte forms of scalars below 0x80.
			return i, chars, issueAt(i, CodeOverlongSequence,
				"two-byte form of a one-byte scalar", hexByte(c))
		case c < 0xE0:
			size = 2
		case c == 0xE0:
			size, lo = 3, 0xA0
		case c == 0xED:
			size, hi = 3, 0x9F
		case c < 0xF0:
			size = 3
		case c == 0xF0:
			size, lo = 4, 0x90
		case c < 0xF4:
			size = 4
		case c == 0xF4:
			size, hi = 4, 0x8F
		default:
			return i, chars, issueAt(i, CodeOutOfRangeScalar,
				"lead byte encodes a scalar above U+10FFFF", hexByte(c))
		}
		for j := 1; j < size; j++ {
			if i+j >= len(s) || s[i+j] == 0 {
				return i, chars, issueAt(i, CodeTruncatedSequence,
					fmt.Sprintf("sequence of %d bytes cut short after %d", size, j), hexByte(c))
			}
			cont := s[i+j]
			if j == 1 && (cont < lo || cont > hi) {
				if cont&0xC0 == 0x80 {
					return i, chars, issueAt(i, firstContIssue(c),
						firstContMessage(c), hexByte(cont))
				}
				return i, chars, issueAt(i, CodeTruncatedSequence,
					fmt.Sprintf("sequence of %d bytes cut short after %d", size, j), hexByte(cont))
			}
			if j > 1 && cont&0xC0 != 0x80 {
				return i, chars, issueAt(i, CodeTruncatedSequence,
					fmt.Sprintf("sequence of %d bytes cut short after %d", size, j), hexByte(cont))
			}
		}
		i += size
		chars++
	}
	return i, chars, nil
}

// firstContIssue classifies a first continuation byte that is a valid
// continuation but outside the tightened range for its lead.
func firstContIssue(lead byte) string {
	switch lead {
	case 0xE0, 0xF0:
		return CodeOverlongSequence
	case 0xED:
		return CodeSurrogateScalar
	default: // 0xF4
		return CodeOutOfRangeScalar
	}
}

func firstContMessage(lead byte) string {
	switch lead {
	case 0xE0, 0xF0:
		return "non-minimal encoding"
	case 0xED:
		return "surrogate code point encoded in UTF-8"
	default:
		return "scalar above U+10FFFF"
	}
}

// decodeUTF16 decodes code units up to the first zero unit, combining
// surrogate pairs, and re-encodes each scalar as UTF-8.
func decodeUTF16(u []uint16) (encoded string, chars int, iss Issues) {
	buf := make([]byte, 0, len(u))
	for i := 0; i < len(u) && u[i] != 0; i++ {
		c := rune(u[i])
		switch {
		case c >= surrMin && c < surrMid:
			if i+1 >= len(u) || u[i+1] < surrMid || u[i+1] > surrMax {
				return "", 0, issueAt(i, CodeUnpairedSurrogate,
					"high surrogate not followed by a low surrogate", hexUnit(u[i]))
			}
			c = 0x10000 + (c-surrMin)<<10 + rune(u[i+1]-surrMid)
			i++
		case c >= surrMid && c <= surrMax:
			return "", 0, issueAt(i, CodeUnpairedSurrogate,
				"low surrogate without a preceding high surrogate", hexUnit(u[i]))
		}
		buf = utf8.AppendRune(buf, c)
		chars++
	}
	return string(buf), chars, nil
}

// decodeUTF32 validates each element up to the first zero as a scalar value
// and re-encodes it as UTF-8.
func decodeUTF32(u []uint32) (encoded string, chars int, iss Issues) {
	buf := make([]byte, 0, len(u))
	for i := 0; i < len(u) && u[i] != 0; i++ {
		c := u[i]
		if c > maxScalar {
			return "", 0, issueAt(i, CodeOutOfRangeScalar,
				"scalar above U+10FFFF", hexScalar(c))
		}
		if c >= surrMin && c <= surrMax {
			return "", 0, issueAt(i, CodeSurrogateScalar,
				"surrogate code point is not a scalar value", hexScalar(c))
		}
		buf = utf8.AppendRune(buf, rune(c))
		chars++
	}
	return string(buf), chars, nil
}

func hexByte(b byte) string     { return fmt.Sprintf("0x%02X", b) }
func hexUnit(u uint16) string   { return fmt.Sprintf("0x%04X", u) }
func hexScalar(u uint32) string { return fmt.Sprintf("0x%X", u) }
