package middleware_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reoring/formstate/convert"
	"github.com/reoring/formstate/dsl"
	"github.com/reoring/formstate/middleware"
)

type login struct {
	Username string `json:"username"`
}

func TestContextRoundTrip(t *testing.T) {
	ctx := middleware.ContextWithModel(context.Background(), login{Username: "alice"})
	got, ok := middleware.ModelFromContext[login](ctx)
	if !ok || got.Username != "alice" {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
	if _, ok := middleware.ModelFromContext[int](ctx); ok {
		t.Fatalf("distinct type must not resolve")
	}
}

func TestWriteErrors(t *testing.T) {
	form := dsl.MustBind[login](dsl.Object().
		Field("username", dsl.Of(convert.String())))
	_, err := form.Submit()
	if err == nil {
		t.Fatalf("expected submit failure")
	}

	rec := httptest.NewRecorder()
	middleware.WriteErrors(rec, err)
	if rec.Code != 422 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"/username"`, `"required"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s:\n%s", want, body)
		}
	}
}
