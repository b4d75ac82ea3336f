package formstate_test

import (
	"testing"

	formstate "github.com/reoring/formstate"
)

func TestPath_Rendering(t *testing.T) {
	if got := (formstate.Path{}).String(); got != "/" {
		t.Fatalf("empty path renders as /, got %q", got)
	}
	p := formstate.NewPath("user", "name")
	if got := p.String(); got != "/user/name" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	p = formstate.NewPath().Item("items", "k1").Field("name")
	if got := p.String(); got != "/items/k1/name" {
		t.Fatalf("unexpected keyed rendering: %q", got)
	}
}

func TestPath_BuildersDoNotAlias(t *testing.T) {
	base := formstate.NewPath("a")
	p1 := base.Field("b")
	p2 := base.Field("c")
	if p1.String() != "/a/b" || p2.String() != "/a/c" {
		t.Fatalf("path builders must not share backing arrays: %s %s", p1, p2)
	}
}
