package i18n

// Translator retrieves localized messages for ParseError codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "この項目は必須です"
		case "invalid_format":
			if e := data["expected"]; e != "" {
				return e + " を入力してください"
			}
			return "形式が不正です"
		case "out_of_range":
			if data["min"] != "" && data["max"] != "" {
				return data["min"] + " から " + data["max"] + " の範囲で入力してください"
			}
			return "範囲外の値です"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "required":
			return "This field is required."
		case "invalid_format":
			if e := data["expected"]; e != "" {
				return "Expected " + e + "."
			}
			return "Invalid format."
		case "out_of_range":
			if data["min"] != "" && data["max"] != "" {
				e := data["expected"]
				if e == "" {
					e = "a value"
				}
				return "Expected " + e + " between " + data["min"] + " and " + data["max"] + "."
			}
			return "Value out of range."
		case "parse_error":
			return "Parse error."
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
