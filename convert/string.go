package convert

import (
	"strings"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/i18n"
)

// String returns a required string converter. Parsing trims surrounding
// whitespace and rejects input that is empty after trimming.
func String() formstate.Converter[string] { return stringConv{} }

type stringConv struct{}

func (stringConv) Parse(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", requiredError()
	}
	return trimmed, nil
}

func (stringConv) Format(v string) string { return v }

// OptionalString parses empty input to nil instead of a required error.
func OptionalString() formstate.Converter[*string] { return optionalStringConv{} }

type optionalStringConv struct{}

func (optionalStringConv) Parse(raw string) (*string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	return &trimmed, nil
}

func (optionalStringConv) Format(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// StringSlice splits input on commas, trimming each element and dropping
// empty ones; empty input yields an empty slice. Formatting joins with a
// comma and space. Not a good fit when values may themselves contain commas.
func StringSlice() formstate.Converter[[]string] { return stringSliceConv{} }

type stringSliceConv struct{}

func (stringSliceConv) Parse(raw string) ([]string, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (stringSliceConv) Format(v []string) string { return strings.Join(v, ", ") }

func requiredError() *formstate.ParseError {
	return &formstate.ParseError{
		Code:    formstate.CodeRequired,
		Message: i18n.T(formstate.CodeRequired, nil),
	}
}
