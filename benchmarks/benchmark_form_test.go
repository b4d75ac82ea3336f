package formstate_test

import (
	"strconv"
	"testing"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/convert"
	g "github.com/reoring/formstate/dsl"
)

// ---- Helpers ----

type account struct {
	Username string    `json:"username"`
	Port     int64     `json:"port"`
	Contacts []contact `json:"contacts"`
}

type contact struct {
	Email string `json:"email"`
}

func accountForm(tb testing.TB) *formstate.Group[account] {
	tb.Helper()
	form, err := g.Bind[account](g.Object().
		Field("username", g.Of(convert.String())).
		Field("port", g.Of(convert.Int64Between(1, 65535))).
		List("contacts", g.Object().
			Field("email", g.Of(convert.String()))))
	if err != nil {
		tb.Fatalf("form build failed: %v", err)
	}
	return form
}

func filledForm(tb testing.TB, items int) *formstate.Group[account] {
	tb.Helper()
	form := accountForm(tb)
	_ = form.SetInput(formstate.NewPath("username"), "alice")
	_ = form.SetInput(formstate.NewPath("port"), "8080")
	list, err := form.ListAt(formstate.NewPath("contacts"))
	if err != nil {
		tb.Fatalf("contacts: %v", err)
	}
	for i := 0; i < items; i++ {
		k := list.Add()
		_ = form.SetInput(formstate.NewPath().Item("contacts", k).Field("email"),
			"user"+strconv.Itoa(i)+"@example.com")
	}
	return form
}

// ---- Benchmarks ----

func BenchmarkSetInput(b *testing.B) {
	form := accountForm(b)
	path := formstate.NewPath("username")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := form.SetInput(path, "alice"); err != nil {
			b.Fatalf("set: %v", err)
		}
	}
}

func BenchmarkSetInput_ListItem(b *testing.B) {
	form := filledForm(b, 8)
	list, _ := form.ListAt(formstate.NewPath("contacts"))
	path := formstate.NewPath().Item("contacts", list.Keys()[7]).Field("email")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := form.SetInput(path, "new@example.com"); err != nil {
			b.Fatalf("set: %v", err)
		}
	}
}

func BenchmarkSubmit(b *testing.B) {
	for _, items := range []int{0, 8, 64} {
		b.Run("items="+strconv.Itoa(items), func(b *testing.B) {
			form := filledForm(b, items)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := form.Submit(); err != nil {
					b.Fatalf("submit: %v", err)
				}
			}
		})
	}
}

func BenchmarkSubmit_AllInvalid(b *testing.B) {
	form := accountForm(b)
	_ = form.SetInput(formstate.NewPath("port"), "not-a-number")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := form.Submit(); err == nil {
			b.Fatalf("expected submit failure")
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	form := filledForm(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = form.Snapshot()
	}
}

func BenchmarkClone(b *testing.B) {
	form := filledForm(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = form.Clone()
	}
}
