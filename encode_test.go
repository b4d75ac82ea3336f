package formstate_test

import (
	"strings"
	"testing"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/convert"
	g "github.com/reoring/formstate/dsl"
)

func TestEncodeSnapshot(t *testing.T) {
	form := g.Object().
		Field("username", g.Of(convert.String())).
		MustBuild()
	_ = form.SetInput(formstate.NewPath("username"), "alice")

	b, err := formstate.EncodeSnapshot(form.Snapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"/username"`) || !strings.Contains(s, `"valid"`) {
		t.Fatalf("unexpected snapshot JSON: %s", s)
	}
}

func TestEncodeFieldErrors(t *testing.T) {
	form := g.Object().
		Field("port", g.Of(convert.Int64Between(0, 65535))).
		MustBuild()
	_ = form.SetInput(formstate.NewPath("port"), "99999")

	_, err := form.Submit()
	fe, ok := formstate.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	b, err := formstate.EncodeFieldErrors(fe)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"/port"`) || !strings.Contains(s, `"out_of_range"`) {
		t.Fatalf("unexpected errors JSON: %s", s)
	}
	if !strings.Contains(s, `"max":"65535"`) {
		t.Fatalf("expected bounds in params: %s", s)
	}
}

func TestFieldErrors_Summary(t *testing.T) {
	form := g.Object().
		Field("a", g.Of(convert.String())).
		Field("b", g.Of(convert.String())).
		Field("c", g.Of(convert.String())).
		Field("d", g.Of(convert.String())).
		MustBuild()
	_, err := form.Submit()
	msg := err.Error()
	if !strings.Contains(msg, "required at /a") || !strings.Contains(msg, "total 4") {
		t.Fatalf("unexpected summary: %q", msg)
	}
}
