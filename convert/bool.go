package convert

import (
	"strconv"
	"strings"

	formstate "github.com/reoring/formstate"
)

// Bool returns a required boolean converter accepting the strconv.ParseBool
// forms; formatting is canonical "true"/"false".
func Bool() formstate.Converter[bool] { return boolConv{} }

type boolConv struct{}

func (boolConv) Parse(raw string) (bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, requiredError()
	}
	b, err := strconv.ParseBool(trimmed)
	if err != nil {
		return false, invalidFormatError("true or false", err)
	}
	return b, nil
}

func (boolConv) Format(v bool) string { return strconv.FormatBool(v) }
