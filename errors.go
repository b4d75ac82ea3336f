package formstate

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeParseError    = "parse_error"
)

// Structural errors signal a caller bug (stale or malformed identifier) rather
// than bad user input; they are returned to the immediate caller and must not
// be swallowed. ErrUnknownKey and ErrInvalidReorder both wrap ErrUnknownPath's
// family so errors.Is checks against the broad class still succeed.
var (
	ErrUnknownPath    = errors.New("formstate: unknown path")
	ErrUnknownKey     = fmt.Errorf("unknown list key: %w", ErrUnknownPath)
	ErrInvalidReorder = errors.New("formstate: invalid reorder")
)

// ParseError is a recoverable value-level error produced by a Converter. It is
// data, not control flow: it folds into field status and into the FieldErrors
// returned by Submit, and editing the input clears it.
type ParseError struct {
	Code    string         `json:"code"`    // One of the codes listed above.
	Message string         `json:"message"` // Human message (see i18n).
	Hint    string         `json:"hint,omitempty"`
	Params  map[string]any `json:"params,omitempty"` // e.g. {"min":"0","max":"65535"}
	Cause   error          `json:"-"`
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e *ParseError) Unwrap() error { return e.Cause }

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// coerceParseError adapts an arbitrary converter error into a *ParseError.
func coerceParseError(err error) *ParseError {
	if pe, ok := AsParseError(err); ok {
		return pe
	}
	return &ParseError{Code: CodeParseError, Message: err.Error(), Cause: err}
}

// FieldError pairs the path of one field with the error it produced.
type FieldError struct {
	Path Path        `json:"path"`
	Err  *ParseError `json:"error"`
}

// FieldErrors is the collection of all field failures from one Submit,
// ordered by declaration-order traversal. It implements error.
type FieldErrors []FieldError

// Error summarizes the first few entries.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(fe)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := fe[i]
		fmt.Fprintf(b, "%s at %s", it.Err.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// At returns the error recorded for the given path, if any.
func (fe FieldErrors) At(p Path) (*ParseError, bool) {
	want := p.String()
	for _, it := range fe {
		if it.Path.String() == want {
			return it.Err, true
		}
	}
	return nil, false
}

// AsFieldErrors extracts FieldErrors from an error using errors.As internally.
func AsFieldErrors(err error) (FieldErrors, bool) {
	if err == nil {
		return nil, false
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func unknownPathError(p Path) error {
	return fmt.Errorf("no field at %s: %w", p, ErrUnknownPath)
}

func unknownKeyError(p Path, key Key) error {
	return fmt.Errorf("no item %q at %s: %w", key, p, ErrUnknownKey)
}
