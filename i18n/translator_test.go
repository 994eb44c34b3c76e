package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("overlong_sequence", nil); msg == "overlong_sequence" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("overlong_sequence", nil); msg == "overlong encoding" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upperTranslator{})
	if msg := T("invalid_byte", nil); msg != "CODE:invalid_byte" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("invalid_byte", nil); msg != "invalid byte" {
		t.Fatalf("expected builtin reset, got %q", msg)
	}
}
