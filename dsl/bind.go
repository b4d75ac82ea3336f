package dsl

import (
	"fmt"
	"reflect"

	formstate "github.com/reoring/formstate"
)

// Bind builds the shape and binds it to struct type T (free function for Go
// version compatibility). Struct keys resolve via formstate.ResolveStructKey;
// DSL names without a matching struct field are collected but dropped during
// assembly. Converter value types should match the struct field types they
// bind to (convertible types are accepted on assembly).
func Bind[T any](b *ObjectBuilder) (*formstate.Group[T], error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Bind[T] requires struct T")
	}
	children, err := b.buildChildren()
	if err != nil {
		return nil, err
	}
	specs := b.children
	fieldByKey := structKeyIndex(rt)

	assemble := func(base T, vals []any) (T, error) {
		rv := reflect.ValueOf(&base).Elem()
		for i, cs := range specs {
			idx, ok := fieldByKey[cs.name]
			if !ok {
				continue
			}
			fv := rv.Field(idx)
			if !fv.CanSet() {
				continue
			}
			if err := assignFragment(cs, fv, vals[i]); err != nil {
				var z T
				return z, fmt.Errorf("bind %q: %w", cs.name, err)
			}
		}
		return base, nil
	}

	disassemble := func(m T) ([]any, error) {
		rv := reflect.ValueOf(m)
		vals := make([]any, len(specs))
		for i, cs := range specs {
			idx, ok := fieldByKey[cs.name]
			if !ok {
				continue
			}
			frag, err := fragmentFor(cs, rv.Field(idx))
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", cs.name, err)
			}
			vals[i] = frag
		}
		return vals, nil
	}

	return formstate.NewGroup(children, assemble, disassemble)
}

// MustBind is like Bind but panics on error (free function for Go version
// compatibility).
func MustBind[T any](b *ObjectBuilder) *formstate.Group[T] {
	g, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return g
}

func structKeyIndex(rt reflect.Type) map[string]int {
	idx := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := formstate.ResolveStructKey(sf)
		if name == "" || name == "-" {
			continue
		}
		idx[name] = i
	}
	return idx
}

// assignFragment writes one collected child value into a struct field.
// Object fragments are map[string]any, list fragments []any; both recurse.
func assignFragment(cs childSpec, fv reflect.Value, val any) error {
	if val == nil {
		// Gracefully handle nil for nillable fields
		switch fv.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			fv.Set(reflect.Zero(fv.Type()))
		default:
			// leave zero value for non-nillable fields
		}
		return nil
	}
	switch cs.kind {
	case kindField:
		vv := reflect.ValueOf(val)
		switch {
		case vv.Type().AssignableTo(fv.Type()):
			fv.Set(vv)
		case vv.Type().ConvertibleTo(fv.Type()):
			fv.Set(vv.Convert(fv.Type()))
		default:
			return fmt.Errorf("field type mismatch: %s into %s", vv.Type(), fv.Type())
		}
	case kindSubform, kindOptional:
		m, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("expected object fragment, got %T", val)
		}
		target := fv
		if fv.Kind() == reflect.Pointer {
			p := reflect.New(fv.Type().Elem())
			fv.Set(p)
			target = p.Elem()
		}
		if target.Kind() != reflect.Struct {
			return fmt.Errorf("cannot bind object fragment into %s", fv.Type())
		}
		return assignStructFromMap(cs.sub, target, m)
	case kindList:
		items, ok := val.([]any)
		if !ok {
			return fmt.Errorf("expected list fragment, got %T", val)
		}
		if fv.Kind() != reflect.Slice {
			return fmt.Errorf("cannot bind list fragment into %s", fv.Type())
		}
		et := fv.Type().Elem()
		out := reflect.MakeSlice(fv.Type(), len(items), len(items))
		for i, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				return fmt.Errorf("expected object fragment at index %d, got %T", i, it)
			}
			ev := out.Index(i)
			target := ev
			if et.Kind() == reflect.Pointer {
				p := reflect.New(et.Elem())
				ev.Set(p)
				target = p.Elem()
			}
			if target.Kind() != reflect.Struct {
				return fmt.Errorf("cannot bind list fragment into %s", fv.Type())
			}
			if err := assignStructFromMap(cs.sub, target, m); err != nil {
				return err
			}
		}
		fv.Set(out)
	}
	return nil
}

func assignStructFromMap(b *ObjectBuilder, sv reflect.Value, m map[string]any) error {
	idx := structKeyIndex(sv.Type())
	for _, cs := range b.children {
		i, ok := idx[cs.name]
		if !ok {
			continue
		}
		fv := sv.Field(i)
		if !fv.CanSet() {
			continue
		}
		if err := assignFragment(cs, fv, m[cs.name]); err != nil {
			return fmt.Errorf("%s: %w", cs.name, err)
		}
	}
	return nil
}

// fragmentFor is the inverse of assignFragment, used when seeding a form from
// an existing model.
func fragmentFor(cs childSpec, fv reflect.Value) (any, error) {
	switch cs.kind {
	case kindField:
		return fv.Interface(), nil
	case kindSubform, kindOptional:
		sv := fv
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return nil, nil
			}
			sv = fv.Elem()
		}
		return structToMap(cs.sub, sv)
	case kindList:
		if fv.Kind() != reflect.Slice {
			return nil, fmt.Errorf("cannot seed list fragment from %s", fv.Type())
		}
		out := make([]any, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					out[i] = nil
					continue
				}
				ev = ev.Elem()
			}
			m, err := structToMap(cs.sub, ev)
			if err != nil {
				return nil, err
			}
			out[i] = m
		}
		return out, nil
	}
	return nil, nil
}

func structToMap(b *ObjectBuilder, sv reflect.Value) (map[string]any, error) {
	if sv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot seed object fragment from %s", sv.Type())
	}
	idx := structKeyIndex(sv.Type())
	out := make(map[string]any, len(b.children))
	for _, cs := range b.children {
		i, ok := idx[cs.name]
		if !ok {
			continue
		}
		frag, err := fragmentFor(cs, sv.Field(i))
		if err != nil {
			return nil, err
		}
		out[cs.name] = frag
	}
	return out, nil
}
