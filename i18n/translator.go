package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "offset" or "unit").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_byte":
			return "不正なバイトです"
		case "truncated_sequence":
			return "マルチバイト列が途中で終わっています"
		case "overlong_sequence":
			return "冗長なエンコーディングです"
		case "surrogate_scalar":
			return "サロゲートコードポイントです"
		case "unpaired_surrogate":
			return "対になっていないサロゲートです"
		case "out_of_range_scalar":
			return "U+10FFFFを超える値です"
		}
	default: // "en"
		switch code {
		case "invalid_byte":
			return "invalid byte"
		case "truncated_sequence":
			return "truncated multi-byte sequence"
		case "overlong_sequence":
			return "overlong encoding"
		case "surrogate_scalar":
			return "surrogate code point"
		case "unpaired_surrogate":
			return "unpaired surrogate"
		case "out_of_range_scalar":
			return "scalar above U+10FFFF"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
