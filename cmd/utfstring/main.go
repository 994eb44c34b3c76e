package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	utfstring "github.com/utfkit/utfstring"
	"github.com/utfkit/utfstring/codec"
	"github.com/utfkit/utfstring/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "utfstring CLI\n\nUsage:\n  utfstring convert -from <codec> -to <codec> [-bom] [-o out] [file]\n  utfstring inspect [-from <codec>] [-format json|yaml] [-lang en|ja] [file]\n\nCodecs: utf-8, utf-16le, utf-16be, utf-32le, utf-32be, auto (BOM sniffing, convert/inspect input only)")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var from, to, out string
	var bom bool
	fs.StringVar(&from, "from", "auto", "input codec name, or auto to sniff a BOM")
	fs.StringVar(&to, "to", "utf-8", "output codec name")
	fs.BoolVar(&bom, "bom", false, "prefix the output with a byte-order mark")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)

	data := readInput(fs.Args())

	var s *utfstring.String
	var err error
	if from == "auto" {
		s, _, err = codec.DecodeAuto(data)
	} else {
		in, ok := codec.Lookup(from)
		if !ok {
			fatalf("unknown input codec %q", from)
		}
		s, err = in.Decode(data)
	}
	if err != nil {
		fatalf("decode: %v", err)
	}

	oc, ok := codec.Lookup(to)
	if !ok {
		fatalf("unknown output codec %q", to)
	}
	var wire []byte
	if bom {
		wire = codec.EncodeWithBOM(oc, s)
	} else {
		wire = oc.Encode(s)
	}
	writeOutput(out, wire)
}

// report is the inspect result rendered as JSON or YAML.
type report struct {
	Encoding string        `json:"encoding" yaml:"encoding"`
	Valid    bool          `json:"valid" yaml:"valid"`
	Bytes    int           `json:"bytes" yaml:"bytes"`
	Chars    int           `json:"chars" yaml:"chars"`
	UTF16    int           `json:"utf16_units" yaml:"utf16_units"`
	Issues   []issueReport `json:"issues,omitempty" yaml:"issues,omitempty"`
}

type issueReport struct {
	Offset  int    `json:"offset" yaml:"offset"`
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Hint    string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var from, format, lang string
	fs.StringVar(&from, "from", "auto", "input codec name, or auto to sniff a BOM")
	fs.StringVar(&format, "format", "json", "report format: json or yaml")
	fs.StringVar(&lang, "lang", "en", "issue message language: en or ja")
	_ = fs.Parse(args)

	i18n.SetLanguage(lang)
	data := readInput(fs.Args())

	var s *utfstring.String
	var err error
	var name string
	if from == "auto" {
		var c codec.Codec
		s, c, err = codec.DecodeAuto(data)
		name = c.Name()
	} else {
		c, ok := codec.Lookup(from)
		if !ok {
			fatalf("unknown input codec %q", from)
		}
		s, err = c.Decode(data)
		name = c.Name()
	}

	r := report{Encoding: name, Valid: err == nil}
	if err == nil {
		r.Bytes = s.NumBytes()
		r.Chars = s.NumChars()
		r.UTF16 = len(s.UTF16())
	} else {
		iss, ok := utfstring.AsIssues(err)
		if !ok {
			fatalf("decode: %v", err)
		}
		for _, it := range iss {
			r.Issues = append(r.Issues, issueReport{
				Offset:  it.Offset,
				Code:    it.Code,
				Message: i18n.T(it.Code, nil),
				Hint:    it.Hint,
			})
		}
	}

	var out []byte
	switch format {
	case "json":
		out, err = gojson.MarshalIndent(r, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(r)
	default:
		fatalf("unknown format %q", format)
	}
	if err != nil {
		fatalf("render report: %v", err)
	}
	_, _ = os.Stdout.Write(out)
	if format == "json" {
		fmt.Println()
	}

	if !r.Valid {
		os.Exit(1)
	}
}

func readInput(args []string) []byte {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fatalf("reading %s: %v", args[0], err)
	}
	return data
}

func writeOutput(path string, data []byte) {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatalf("writing stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
