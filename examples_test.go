package utfstring_test

import (
	"fmt"

	utfstring "github.com/utfkit/utfstring"
)

func ExampleNew() {
	s, _ := utfstring.New("héllo")
	fmt.Println(s.NumChars(), s.NumBytes())
	// Output: 5 6
}

func ExampleFromUTF16() {
	s, _ := utfstring.FromUTF16([]uint16{0xD83D, 0xDE00})
	fmt.Println(s.String(), s.NumChars())
	// Output: 😀 1
}

func ExampleString_UTF16() {
	s, _ := utfstring.New("😀")
	for _, u := range s.UTF16() {
		fmt.Printf("0x%04X ", u)
	}
	fmt.Println()
	// Output: 0xD83D 0xDE00
}

func ExampleAsIssues() {
	_, err := utfstring.FromUTF8([]byte{0xC0, 0x80})
	if iss, ok := utfstring.AsIssues(err); ok {
		fmt.Println(iss[0].Code, iss[0].Offset)
	}
	// Output: overlong_sequence 0
}
