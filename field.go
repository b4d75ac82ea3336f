package formstate

import "strings"

// Field is one editable slot: a raw string, a converter, and a state machine.
// The raw string is the source of truth; the parsed value and error are a
// cache recomputed on every input change.
type Field[T any] struct {
	raw             string
	conv            Converter[T]
	value           T
	parseErr        *ParseError
	touched         bool
	submitAttempted bool
}

// NewField constructs an empty field over the given converter.
func NewField[T any](conv Converter[T]) *Field[T] {
	f := &Field[T]{conv: conv}
	f.recompute()
	return f
}

// NewFieldValue constructs a field seeded from a typed value via Format.
// Seeding does not count as a touch.
func NewFieldValue[T any](conv Converter[T], v T) *Field[T] {
	f := &Field[T]{conv: conv}
	f.Reset(v)
	return f
}

func (f *Field[T]) Kind() Kind { return KindField }

// SetInput replaces the raw input and marks the field touched. A parse error
// never escapes here; it becomes part of the field's status.
func (f *Field[T]) SetInput(raw string) {
	f.raw = raw
	f.touched = true
	f.recompute()
}

// Raw returns the current raw input.
func (f *Field[T]) Raw() string { return f.raw }

// Touched reports whether the user has edited this field since construction
// or the last Reset.
func (f *Field[T]) Touched() bool { return f.touched }

// SubmitAttempted reports whether a submit has run over this field.
func (f *Field[T]) SubmitAttempted() bool { return f.submitAttempted }

// MarkSubmitAttempted flags the field so UI layers can surface empty-required
// errors only after a submit attempt, not while the user is still typing.
func (f *Field[T]) MarkSubmitAttempted() { f.submitAttempted = true }

// Status derives the field's validity. Empty raw input (after trimming)
// reports StatusEmpty rather than StatusInvalid so a never-touched required
// field is not flagged before the user interacts or attempts submit.
func (f *Field[T]) Status() Status {
	if strings.TrimSpace(f.raw) == "" {
		return StatusEmpty
	}
	if f.parseErr != nil {
		return StatusInvalid
	}
	return StatusValid
}

// Value returns the cached parse result for the current raw input.
func (f *Field[T]) Value() (T, *ParseError) { return f.value, f.parseErr }

// Reset seeds the field from a typed value via Format and clears the touched
// and submit-attempted flags.
func (f *Field[T]) Reset(v T) {
	f.raw = f.conv.Format(v)
	f.touched = false
	f.submitAttempted = false
	f.recompute()
}

// Clear empties the field and clears its flags.
func (f *Field[T]) Clear() {
	f.raw = ""
	f.touched = false
	f.submitAttempted = false
	f.recompute()
}

func (f *Field[T]) recompute() {
	v, err := f.conv.Parse(f.raw)
	if err != nil {
		var zero T
		f.value = zero
		f.parseErr = coerceParseError(err)
		return
	}
	f.value = v
	f.parseErr = nil
}

func (f *Field[T]) setInput(prefix Path, at Segment, rest Path, raw string) error {
	if at.HasKey || len(rest) > 0 {
		return unknownPathError(prefix.concat(rest))
	}
	f.SetInput(raw)
	return nil
}

func (f *Field[T]) find(prefix Path, at Segment, rest Path) (Node, error) {
	if at.HasKey || len(rest) > 0 {
		return nil, unknownPathError(prefix.concat(rest))
	}
	return f, nil
}

func (f *Field[T]) submit(prefix Path, errs *FieldErrors) (any, bool) {
	f.submitAttempted = true
	f.touched = true
	if f.parseErr != nil {
		*errs = append(*errs, FieldError{Path: prefix, Err: f.parseErr})
		return nil, false
	}
	return f.value, true
}

func (f *Field[T]) markSubmitAttempted() { f.submitAttempted = true }

func (f *Field[T]) snapshot(prefix Path, snap Snapshot) {
	snap[prefix.String()] = FieldState{
		Status:          f.Status(),
		Err:             f.parseErr,
		Touched:         f.touched,
		SubmitAttempted: f.submitAttempted,
	}
}

func (f *Field[T]) reset(model any) error {
	if model == nil {
		f.Clear()
		return nil
	}
	v, ok := model.(T)
	if !ok {
		return &ParseError{Code: CodeParseError, Message: "model value type mismatch"}
	}
	f.Reset(v)
	return nil
}

func (f *Field[T]) isEmpty() bool { return strings.TrimSpace(f.raw) == "" }

func (f *Field[T]) clone() Node {
	cp := *f
	return &cp
}
