package convert

import (
	"strconv"
	"strings"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/i18n"
)

// Int64 returns a required integer converter over the full int64 range.
func Int64() formstate.Converter[int64] {
	return Int64Between(-1<<63, 1<<63-1)
}

// Int64Between returns a required integer converter rejecting values outside
// [min, max] with an out-of-range error carrying the bounds.
func Int64Between(min, max int64) formstate.Converter[int64] {
	return int64Conv{min: min, max: max}
}

type int64Conv struct{ min, max int64 }

func (c int64Conv) Parse(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, requiredError()
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, invalidFormatError("a whole number", err)
	}
	if n < c.min || n > c.max {
		return 0, outOfRangeError("a whole number", strconv.FormatInt(c.min, 10), strconv.FormatInt(c.max, 10))
	}
	return n, nil
}

func (c int64Conv) Format(v int64) string { return strconv.FormatInt(v, 10) }

// OptionalInt64 parses empty input to nil instead of a required error.
func OptionalInt64() formstate.Converter[*int64] { return optionalInt64Conv{} }

type optionalInt64Conv struct{}

func (optionalInt64Conv) Parse(raw string) (*int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, invalidFormatError("a whole number", err)
	}
	return &n, nil
}

func (optionalInt64Conv) Format(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// Float64 returns a required floating-point converter.
func Float64() formstate.Converter[float64] { return float64Conv{} }

type float64Conv struct{}

func (float64Conv) Parse(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, requiredError()
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, invalidFormatError("a number", err)
	}
	return f, nil
}

// Format uses the shortest representation that parses back exactly, which is
// what keeps the round-trip law for float64.
func (float64Conv) Format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func invalidFormatError(expected string, cause error) *formstate.ParseError {
	return &formstate.ParseError{
		Code:    formstate.CodeInvalidFormat,
		Message: i18n.T(formstate.CodeInvalidFormat, map[string]string{"expected": expected}),
		Params:  map[string]any{"expected": expected},
		Cause:   cause,
	}
}

func outOfRangeError(expected, min, max string) *formstate.ParseError {
	return &formstate.ParseError{
		Code:    formstate.CodeOutOfRange,
		Message: i18n.T(formstate.CodeOutOfRange, map[string]string{"expected": expected, "min": min, "max": max}),
		Params:  map[string]any{"expected": expected, "min": min, "max": max},
	}
}
