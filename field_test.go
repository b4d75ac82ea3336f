package formstate_test

import (
	"testing"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/convert"
)

func TestField_StartsEmptyAndUntouched(t *testing.T) {
	f := formstate.NewField(convert.String())
	if got := f.Status(); got != formstate.StatusEmpty {
		t.Fatalf("expected empty status, got %v", got)
	}
	if f.Touched() || f.SubmitAttempted() {
		t.Fatalf("fresh field must be untouched")
	}
	// The required error is already cached behind the empty status so UI
	// layers can surface it after a submit attempt.
	if _, err := f.Value(); err == nil {
		t.Fatalf("expected cached required error for empty required field")
	}
}

func TestField_SetInputDrivesStatus(t *testing.T) {
	f := formstate.NewField(convert.Int64Between(0, 100))
	f.SetInput("abc")
	if got := f.Status(); got != formstate.StatusInvalid {
		t.Fatalf("expected invalid, got %v", got)
	}
	if !f.Touched() {
		t.Fatalf("SetInput must mark the field touched")
	}
	f.SetInput("42")
	if got := f.Status(); got != formstate.StatusValid {
		t.Fatalf("expected valid, got %v", got)
	}
	v, err := f.Value()
	if err != nil || v != 42 {
		t.Fatalf("unexpected value: %v %v", v, err)
	}
	f.SetInput("")
	if got := f.Status(); got != formstate.StatusEmpty {
		t.Fatalf("clearing input returns to empty, got %v", got)
	}
}

func TestField_ResetSeedsWithoutTouch(t *testing.T) {
	f := formstate.NewField(convert.Int64())
	f.SetInput("7")
	f.MarkSubmitAttempted()
	f.Reset(99)
	if f.Raw() != "99" {
		t.Fatalf("expected formatted raw, got %q", f.Raw())
	}
	if f.Touched() || f.SubmitAttempted() {
		t.Fatalf("Reset must clear touched and submit-attempted")
	}
	if got := f.Status(); got != formstate.StatusValid {
		t.Fatalf("seeded field should be valid, got %v", got)
	}
}

func TestField_StatusRecomputableFromRaw(t *testing.T) {
	f := formstate.NewField(convert.String())
	f.SetInput("  spaced  ")
	v, err := f.Value()
	if err != nil || v != "spaced" {
		t.Fatalf("unexpected cache: %v %v", v, err)
	}
	// raw stays the source of truth, untouched by parsing
	if f.Raw() != "  spaced  " {
		t.Fatalf("raw must not be rewritten by parse, got %q", f.Raw())
	}
}
