package dsl

import (
	formstate "github.com/reoring/formstate"
)

// AnyConverter adapts a typed Converter to an any-typed DSL wrapper so that
// fields over different value types can share one object builder. It is a
// field factory: every use stamps a fresh, independent Field.
type AnyConverter struct {
	newField func() formstate.Node
}

// Of wraps a Converter[T] as an AnyConverter for Field builders.
func Of[T any](c formstate.Converter[T]) AnyConverter {
	return AnyConverter{
		newField: func() formstate.Node { return formstate.NewField[T](c) },
	}
}

// OfValue is like Of but seeds every stamped field from an initial value via
// the converter's Format. Seeding does not count as a touch.
func OfValue[T any](c formstate.Converter[T], initial T) AnyConverter {
	return AnyConverter{
		newField: func() formstate.Node { return formstate.NewFieldValue[T](c, initial) },
	}
}
