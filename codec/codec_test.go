package codec

import (
	"bytes"
	"testing"

	utfstring "github.com/utfkit/utfstring"
)

func mustNew(t *testing.T, s string) *utfstring.String {
	t.Helper()
	v, err := utfstring.New(s)
	if err != nil {
		t.Fatalf("New(%q) err: %v", s, err)
	}
	return v
}

func TestRoundTrip_AllCodecs(t *testing.T) {
	s := mustNew(t, "héllo 日本語 😀")
	for _, c := range []Codec{UTF8(), UTF16LE(), UTF16BE(), UTF32LE(), UTF32BE()} {
		wire := c.Encode(s)
		got, err := c.Decode(wire)
		if err != nil {
			t.Fatalf("%s decode err: %v", c.Name(), err)
		}
		if got.String() != s.String() {
			t.Fatalf("%s roundtrip mismatch: %q != %q", c.Name(), got.String(), s.String())
		}
	}
}

func TestUTF16LE_Wire(t *testing.T) {
	s := mustNew(t, "A😀")
	wire := UTF16LE().Encode(s)
	want := []byte{0x41, 0x00, 0x3D, 0xD8, 0x00, 0xDE}
	if !bytes.Equal(wire, want) {
		t.Fatalf("wire = % X, want % X", wire, want)
	}
}

func TestDecode_OddLength(t *testing.T) {
	if _, err := UTF16LE().Decode([]byte{0x41, 0x00, 0x42}); err == nil {
		t.Fatalf("expected error for odd UTF-16 stream")
	}
	if _, err := UTF32BE().Decode([]byte{0x00, 0x00, 0x00}); err == nil {
		t.Fatalf("expected error for short UTF-32 stream")
	}
	_, err := UTF16LE().Decode([]byte{0x41})
	iss, ok := utfstring.AsIssues(err)
	if !ok || iss[0].Code != utfstring.CodeTruncatedSequence {
		t.Fatalf("expected truncated_sequence, got %v", err)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		in   []byte
		name string
		bom  int
	}{
		{[]byte{0xEF, 0xBB, 0xBF, 0x41}, "utf-8", 3},
		{[]byte{0xFF, 0xFE, 0x41, 0x00}, "utf-16le", 2},
		{[]byte{0xFE, 0xFF, 0x00, 0x41}, "utf-16be", 2},
		{[]byte{0xFF, 0xFE, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00}, "utf-32le", 4},
		{[]byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x41}, "utf-32be", 4},
		{[]byte("plain"), "utf-8", 0},
	}
	for _, tc := range cases {
		c, n := Detect(tc.in)
		if c.Name() != tc.name || n != tc.bom {
			t.Fatalf("Detect(% X) = %s/%d, want %s/%d", tc.in, c.Name(), n, tc.name, tc.bom)
		}
		s, _, err := DecodeAuto(tc.in)
		if err != nil {
			t.Fatalf("DecodeAuto(% X) err: %v", tc.in, err)
		}
		if tc.bom > 0 && s.String() != "A" {
			t.Fatalf("DecodeAuto(% X) = %q, want \"A\"", tc.in, s.String())
		}
	}
}

func TestEncodeWithBOM(t *testing.T) {
	s := mustNew(t, "A")
	wire := EncodeWithBOM(UTF16BE(), s)
	want := []byte{0xFE, 0xFF, 0x00, 0x41}
	if !bytes.Equal(wire, want) {
		t.Fatalf("wire = % X, want % X", wire, want)
	}
	got, c, err := DecodeAuto(wire)
	if err != nil || c.Name() != "utf-16be" || got.String() != "A" {
		t.Fatalf("DecodeAuto failed: %v %v", c, err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF8", "utf-16le", "UTF-32BE"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup("latin1"); ok {
		t.Fatalf("Lookup(latin1) should fail")
	}
}
