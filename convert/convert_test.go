package convert

import (
	"testing"
	"time"

	formstate "github.com/reoring/formstate"
)

func TestString_RequiredAndTrim(t *testing.T) {
	c := String()
	if _, err := c.Parse(""); err == nil {
		t.Fatalf("expected required error for empty input")
	}
	_, err := c.Parse("   ")
	pe, ok := formstate.AsParseError(err)
	if !ok || pe.Code != formstate.CodeRequired {
		t.Fatalf("expected required code, got %v", pe)
	}
	v, verr := c.Parse("  alice  ")
	if verr != nil {
		t.Fatalf("parse err: %v", verr)
	}
	if v != "alice" {
		t.Fatalf("expected trimmed value, got %q", v)
	}
}

func TestString_RoundTrip(t *testing.T) {
	c := String()
	for _, in := range []string{"alice", "  bob ", "a b c"} {
		v, err := c.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		back, err := c.Parse(c.Format(v))
		if err != nil {
			t.Fatalf("reparse %q: %v", c.Format(v), err)
		}
		if back != v {
			t.Fatalf("round trip mismatch: %q != %q", back, v)
		}
	}
}

func TestOptionalString_EmptyIsNone(t *testing.T) {
	c := OptionalString()
	v, err := c.Parse("")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for empty input, got %v", *v)
	}
	if got := c.Format(nil); got != "" {
		t.Fatalf("expected empty format for nil, got %q", got)
	}
	v, err = c.Parse("x")
	if err != nil || v == nil || *v != "x" {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	if got := c.Format(v); got != "x" {
		t.Fatalf("format mismatch: %q", got)
	}
}

func TestInt64Between_RangeAndFormat(t *testing.T) {
	c := Int64Between(0, 65535)
	if _, err := c.Parse("70000"); err != nil {
		pe, _ := formstate.AsParseError(err)
		if pe.Code != formstate.CodeOutOfRange {
			t.Fatalf("expected out_of_range, got %v", pe)
		}
		if pe.Params["min"] != "0" || pe.Params["max"] != "65535" {
			t.Fatalf("expected bounds in params, got %v", pe.Params)
		}
	} else {
		t.Fatalf("expected range error")
	}
	if _, err := c.Parse("abc"); err != nil {
		pe, _ := formstate.AsParseError(err)
		if pe.Code != formstate.CodeInvalidFormat {
			t.Fatalf("expected invalid_format, got %v", pe)
		}
	} else {
		t.Fatalf("expected format error")
	}
	v, err := c.Parse(" 8080 ")
	if err != nil || v != 8080 {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	if got := c.Format(v); got != "8080" {
		t.Fatalf("format mismatch: %q", got)
	}
}

func TestFloat64_RoundTrip(t *testing.T) {
	c := Float64()
	for _, in := range []string{"0.1", "3", "-2.5e10", "0.30000000000000004"} {
		v, err := c.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		back, err := c.Parse(c.Format(v))
		if err != nil {
			t.Fatalf("reparse: %v", err)
		}
		if back != v {
			t.Fatalf("round trip mismatch for %q: %v != %v", in, back, v)
		}
	}
}

func TestBool_ParseAndFormat(t *testing.T) {
	c := Bool()
	v, err := c.Parse("TRUE")
	if err != nil || v != true {
		t.Fatalf("unexpected: %v %v", v, err)
	}
	if got := c.Format(false); got != "false" {
		t.Fatalf("format mismatch: %q", got)
	}
	if _, err := c.Parse("maybe"); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestStringSlice_SplitJoin(t *testing.T) {
	c := StringSlice()
	v, err := c.Parse(" a, b ,, c ")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if len(v) != 3 || v[0] != "a" || v[1] != "b" || v[2] != "c" {
		t.Fatalf("unexpected slice: %v", v)
	}
	back, err := c.Parse(c.Format(v))
	if err != nil || len(back) != 3 || back[2] != "c" {
		t.Fatalf("round trip mismatch: %v %v", back, err)
	}
	empty, err := c.Parse("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v %v", empty, err)
	}
}

func TestTimeRFC3339_RoundTrip(t *testing.T) {
	c := TimeRFC3339()
	v, err := c.Parse("2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !v.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", v)
	}
	if got := c.Format(v); got != "2025-01-01T00:00:00Z" {
		t.Fatalf("format mismatch: %q", got)
	}
	back, err := c.Parse(c.Format(v))
	if err != nil || !back.Equal(v) {
		t.Fatalf("round trip mismatch: %v %v", back, err)
	}
	if _, err := c.Parse("not-a-time"); err == nil {
		t.Fatalf("expected format error")
	}
}
