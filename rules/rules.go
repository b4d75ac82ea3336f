// Package rules provides cross-field checks over a submitted model.
//
// Per-field validation belongs to converters; rules cover constraints that
// span fields, such as a confirmation input matching its source or a
// collection staying unique on some key. Run them after a successful
// Submit:
//
//	m, err := form.Submit()
//	if err != nil { ... }
//	if err := rules.Apply(m,
//		rules.Equal[Signup]("/password", "/confirm"),
//		rules.If[Signup]("/plan", rules.Eq, "team").Then(
//			rules.AtLeastOne[Signup]("/members"),
//		),
//	); err != nil { ... }
//
// Paths are slash-separated field names, as produced by the form itself.
// Struct fields resolve through the same tag rules as typed binding.
package rules

import (
	"fmt"
	"reflect"
	"strings"

	formstate "github.com/reoring/formstate"
)

// Codes used by the built-in rules, in addition to the converter codes.
const (
	CodeMismatch  = "mismatch"
	CodeTooShort  = "too_short"
	CodeNotUnique = "not_unique"
)

// Rule checks one constraint against a model and reports any violations.
type Rule[M any] func(M) []formstate.FieldError

// Apply runs rules in order and collects every violation. It returns nil
// when all rules pass, otherwise the combined FieldErrors.
func Apply[M any](m M, rules ...Rule[M]) error {
	var errs formstate.FieldErrors
	for _, r := range rules {
		if r == nil {
			continue
		}
		errs = append(errs, r(m)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Op is a comparison operator for If conditions.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Conditional gates rules on the state of the model.
type Conditional[M any] struct {
	path string
	op   Op
	want any
	all  []Conditional[M]
	any  []Conditional[M]
}

// If builds a condition comparing the value at path against want.
func If[M any](path string, op Op, want any) Conditional[M] {
	return Conditional[M]{path: path, op: op, want: want}
}

// IfAll requires every condition to hold.
func IfAll[M any](conds ...Conditional[M]) Conditional[M] {
	return Conditional[M]{all: conds}
}

// IfAny requires at least one condition to hold.
func IfAny[M any](conds ...Conditional[M]) Conditional[M] {
	return Conditional[M]{any: conds}
}

// And combines the receiver with more conditions conjunctively.
func (c Conditional[M]) And(others ...Conditional[M]) Conditional[M] {
	return IfAll(append([]Conditional[M]{c}, others...)...)
}

// Or combines the receiver with more conditions disjunctively.
func (c Conditional[M]) Or(others ...Conditional[M]) Conditional[M] {
	return IfAny(append([]Conditional[M]{c}, others...)...)
}

// Then returns a rule that runs the given rules only when the condition
// holds.
func (c Conditional[M]) Then(rules ...Rule[M]) Rule[M] {
	return func(m M) []formstate.FieldError {
		if !c.eval(m) {
			return nil
		}
		var out []formstate.FieldError
		for _, r := range rules {
			if r == nil {
				continue
			}
			out = append(out, r(m)...)
		}
		return out
	}
}

func (c Conditional[M]) eval(m M) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.eval(m) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.eval(m) {
				return true
			}
		}
		return false
	}
	cur, ok := valueAt(m, c.path)
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

// Required reports a violation when the value at path is missing or zero.
func Required[M any](path string) Rule[M] {
	return func(m M) []formstate.FieldError {
		v, ok := valueAt(m, path)
		if ok && !isZero(v) {
			return nil
		}
		return violation(path, formstate.CodeRequired, "This field is required.", nil)
	}
}

// Equal reports a violation at pathB when the values at the two paths
// differ. Typical use is a confirmation input.
func Equal[M any](pathA, pathB string) Rule[M] {
	return func(m M) []formstate.FieldError {
		a, aok := valueAt(m, pathA)
		b, bok := valueAt(m, pathB)
		if aok && bok && reflect.DeepEqual(a, b) {
			return nil
		}
		return violation(pathB, CodeMismatch,
			fmt.Sprintf("Must match %s.", pathA),
			map[string]any{"other": pathA})
	}
}

// AtLeastOne reports a violation when the collection at path is empty.
func AtLeastOne[M any](path string) Rule[M] {
	return func(m M) []formstate.FieldError {
		v, ok := valueAt(m, path)
		if !ok {
			return nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		if rv.Len() > 0 {
			return nil
		}
		return violation(path, CodeTooShort, "At least 1 item is required.",
			map[string]any{"min": 1})
	}
}

// UniqueBy reports a violation at the collection path when two elements
// share the same value at the relative key path. Keys are compared by
// their string rendering, so keep the key a single comparable type.
func UniqueBy[M any](collectionPath, keyPath string) Rule[M] {
	return func(m M) []formstate.FieldError {
		v, ok := valueAt(m, collectionPath)
		if !ok {
			return nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		seen := make(map[string]int)
		var out []formstate.FieldError
		for i := 0; i < rv.Len(); i++ {
			kv, ok := lookup(rv.Index(i).Interface(), splitPath(keyPath))
			if !ok {
				continue
			}
			key := fmt.Sprint(kv)
			if first, dup := seen[key]; dup {
				out = append(out, violation(collectionPath, CodeNotUnique,
					fmt.Sprintf("Duplicate value %q.", key),
					map[string]any{"first": first, "dup": i, "key": key})...)
			} else {
				seen[key] = i
			}
		}
		return out
	}
}

// Check wraps an arbitrary predicate into a rule reporting at path.
func Check[M any](path string, code, message string, pred func(M) bool) Rule[M] {
	return func(m M) []formstate.FieldError {
		if pred(m) {
			return nil
		}
		return violation(path, code, message, nil)
	}
}

func violation(path, code, message string, params map[string]any) []formstate.FieldError {
	return []formstate.FieldError{{
		Path: formstate.NewPath(splitPath(path)...),
		Err:  &formstate.ParseError{Code: code, Message: message, Params: params},
	}}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func valueAt[M any](m M, path string) (any, bool) {
	return lookup(m, splitPath(path))
}

// lookup walks structs, maps and pointers by field name. Struct fields
// resolve through ResolveStructKey so rule paths line up with form paths.
func lookup(v any, names []string) (any, bool) {
	cur := reflect.ValueOf(v)
	for _, name := range names {
		for cur.Kind() == reflect.Pointer || cur.Kind() == reflect.Interface {
			if cur.IsNil() {
				return nil, false
			}
			cur = cur.Elem()
		}
		switch cur.Kind() {
		case reflect.Struct:
			found := false
			rt := cur.Type()
			for i := 0; i < rt.NumField(); i++ {
				sf := rt.Field(i)
				if !sf.IsExported() {
					continue
				}
				if formstate.ResolveStructKey(sf) == name {
					cur = cur.Field(i)
					found = true
					break
				}
			}
			if !found {
				return nil, false
			}
		case reflect.Map:
			if cur.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			cur = cur.MapIndex(reflect.ValueOf(name))
			if !cur.IsValid() {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	for cur.Kind() == reflect.Interface {
		if cur.IsNil() {
			return nil, false
		}
		cur = cur.Elem()
	}
	if !cur.IsValid() {
		return nil, false
	}
	return cur.Interface(), true
}

func isZero(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

func compare(got any, op Op, want any) bool {
	if gf, wf, ok := asFloats(got, want); ok {
		switch op {
		case Eq:
			return gf == wf
		case Ne:
			return gf != wf
		case Lt:
			return gf < wf
		case Le:
			return gf <= wf
		case Gt:
			return gf > wf
		case Ge:
			return gf >= wf
		}
		return false
	}
	gs, ws := fmt.Sprint(got), fmt.Sprint(want)
	switch op {
	case Eq:
		return gs == ws
	case Ne:
		return gs != ws
	case Lt:
		return gs < ws
	case Le:
		return gs <= ws
	case Gt:
		return gs > ws
	case Ge:
		return gs >= ws
	}
	return false
}

func asFloats(a, b any) (float64, float64, bool) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return af, bf, aok && bok
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
