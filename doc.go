package utfstring

// Package utfstring provides:
//
// - An immutable String value holding text as validated UTF-8
// - Strict decoding constructors from UTF-8, UTF-16, and UTF-32 (FromUTF8/FromUTF16/FromUTF32)
// - Lossless re-rendering as UTF-8, UTF-16, UTF-32, and the platform wide-character form
// - A stable error model via Issues (code-unit offset, code, message)
//
// Design policy:
// - Validation happens exactly once, at construction; every accessor is a
//   total function over an already-valid value and never fails.
// - Decoding is strict: overlong encodings, unpaired surrogates, and
//   out-of-range scalars are rejected, never replaced with U+FFFD.
// - Keep only public APIs in the root package; place byte-stream codecs
//   under codec/, error-message localization under i18n/, and the CLI under
//   cmd/utfstring.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := utfstring.New("héllo")
//	if err != nil { ... }
//	units := s.UTF16()
//	n := s.NumChars()
//
//	if iss, ok := utfstring.AsIssues(err); ok {
//		fmt.Println(iss[0].Code, iss[0].Offset)
//	}
