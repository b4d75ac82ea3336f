package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "This field is required." {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Interpolation(t *testing.T) {
	if msg := T("out_of_range", map[string]string{"expected": "a whole number", "min": "0", "max": "10"}); msg != "Expected a whole number between 0 and 10." {
		t.Fatalf("unexpected message: %q", msg)
	}
	if msg := T("invalid_format", map[string]string{"expected": "a number"}); msg != "Expected a number." {
		t.Fatalf("unexpected message: %q", msg)
	}
	// unknown codes fall back to the code itself
	if msg := T("nope", nil); msg != "nope" {
		t.Fatalf("unexpected fallback: %q", msg)
	}
}
