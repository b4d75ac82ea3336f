package formstate

// Converter is the per-type strategy turning a raw string into a typed value
// and back. Both functions must be pure. Format must satisfy the round-trip
// law: Parse(Format(v)) yields a value equal to v for every v producible by
// Parse (value equality, not string equality).
//
// Parse("") decides whether the field is required: returning an error (code
// CodeRequired by convention) makes an empty field fail at submit time, while
// returning a value (for example a nil pointer) makes it optional. No default
// converters live in this package; see convert/.
type Converter[T any] interface {
	Parse(raw string) (T, error)
	Format(v T) string
}

// ConverterFuncs adapts a pair of functions to the Converter interface.
type ConverterFuncs[T any] struct {
	ParseFunc  func(string) (T, error)
	FormatFunc func(T) string
}

func (c ConverterFuncs[T]) Parse(raw string) (T, error) { return c.ParseFunc(raw) }
func (c ConverterFuncs[T]) Format(v T) string           { return c.FormatFunc(v) }
