package convert

import (
	"strings"
	"time"

	formstate "github.com/reoring/formstate"
)

// TimeRFC3339 returns a required converter between RFC3339 strings and
// time.Time. Formatting normalizes to UTC and RFC3339Nano (Go trims trailing
// zeros), so the round-trip law holds under time.Time equality.
func TimeRFC3339() formstate.Converter[time.Time] { return rfc3339Conv{} }

type rfc3339Conv struct{}

func (rfc3339Conv) Parse(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, requiredError()
	}
	t, err := parseRFC3339(trimmed)
	if err != nil {
		return time.Time{}, invalidFormatError("an RFC3339 timestamp", err)
	}
	return t, nil
}

func (rfc3339Conv) Format(v time.Time) string { return formatRFC3339Canonical(v) }

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
