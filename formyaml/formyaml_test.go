package formyaml_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/formyaml"
)

const serverDef = `
fields:
  - name: host
    type: string
  - name: port
    type: int64
    min: 1
    max: 65535
  - name: tls
    optional: true
    fields:
      - name: cert
        type: string
  - name: upstreams
    list: true
    fields:
      - name: addr
        type: string
`

func TestLoad_BuildsWorkingForm(t *testing.T) {
	form, err := formyaml.Load([]byte(serverDef))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := form.SetInput(formstate.NewPath("host"), "example.com"); err != nil {
		t.Fatalf("set host: %v", err)
	}
	if err := form.SetInput(formstate.NewPath("port"), "8080"); err != nil {
		t.Fatalf("set port: %v", err)
	}
	list, err := form.ListAt(formstate.NewPath("upstreams"))
	if err != nil {
		t.Fatalf("upstreams: %v", err)
	}
	k := list.Add()
	if err := form.SetInput(formstate.NewPath().Item("upstreams", k).Field("addr"), "10.0.0.1:80"); err != nil {
		t.Fatalf("set addr: %v", err)
	}

	got, err := form.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := map[string]any{
		"host": "example.com",
		"port": int64(8080),
		"tls":  nil,
		"upstreams": []any{
			map[string]any{"addr": "10.0.0.1:80"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_RangeFromDefinition(t *testing.T) {
	form, err := formyaml.Load([]byte(serverDef))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_ = form.SetInput(formstate.NewPath("host"), "example.com")
	_ = form.SetInput(formstate.NewPath("port"), "70000")

	_, err = form.Submit()
	ferrs, ok := formstate.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	pe, ok := ferrs.At(formstate.NewPath("port"))
	if !ok {
		t.Fatalf("no error at /port: %v", ferrs)
	}
	if pe.Code != formstate.CodeOutOfRange {
		t.Fatalf("code = %q, want %q", pe.Code, formstate.CodeOutOfRange)
	}
}

func TestParse_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "fields:\n  - name: a\n    type: string\n    widget: slider\n", "widget"},
		{"unknown type", "fields:\n  - name: a\n    type: complex128\n", "unknown field type"},
		{"missing name", "fields:\n  - type: string\n", "no name"},
		{"duplicate name", "fields:\n  - name: a\n    type: string\n  - name: a\n    type: string\n", "duplicate"},
		{"type and fields", "fields:\n  - name: a\n    type: string\n    fields:\n      - name: b\n        type: string\n", "both"},
		{"leaf optional", "fields:\n  - name: a\n    type: string\n    optional: true\n", "nested fields"},
		{"optional list", "fields:\n  - name: a\n    optional: true\n    list: true\n    fields:\n      - name: b\n        type: string\n", "both optional and list"},
		{"lone min", "fields:\n  - name: a\n    type: int64\n    min: 1\n", "together"},
		{"empty", "", "empty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formyaml.Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestDefinition_Paths(t *testing.T) {
	def, err := formyaml.Parse([]byte(serverDef))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"/host", "/port", "/tls/cert", "/upstreams/[]/addr"}
	if diff := cmp.Diff(want, def.Paths()); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := formyaml.LoadFile("testdata/nope.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
