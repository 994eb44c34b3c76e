package utfstring

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidByte       = "invalid_byte"        // byte that cannot start or continue a UTF-8 sequence
	CodeTruncatedSequence = "truncated_sequence"  // multi-byte sequence cut short
	CodeOverlongSequence  = "overlong_sequence"   // scalar encoded with more bytes than its minimal form
	CodeSurrogateScalar   = "surrogate_scalar"    // scalar in the surrogate range 0xD800-0xDFFF
	CodeUnpairedSurrogate = "unpaired_surrogate"  // high surrogate without a low, or a stray low
	CodeOutOfRangeScalar  = "out_of_range_scalar" // scalar above U+10FFFF
)

// Issue represents a single decoding failure.
type Issue struct {
	Offset  int    // Index into the input, counted in the input's code units (bytes for UTF-8).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending unit rendered in hex, expected lengths, etc.
}

// Issues is a collection of decoding errors that implements error.
//
// The decoding constructors fail fast, so an Issues value they return holds
// exactly one entry; the type stays a slice so callers batch-validating many
// inputs can aggregate with AppendIssues.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. overlong_sequence at offset 2
		fmt.Fprintf(b, "%s at offset %d", it.Code, it.Offset)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
