package dsl

import (
	formstate "github.com/reoring/formstate"
)

type childKind int

const (
	kindField childKind = iota
	kindSubform
	kindOptional
	kindList
)

type childSpec struct {
	name string
	kind childKind
	conv AnyConverter   // kindField
	sub  *ObjectBuilder // kindSubform / kindOptional / kindList
}

type ObjectBuilder struct {
	children []childSpec
}

// Object creates a new form shape builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Field registers a plain input field with its converter.
func (b *ObjectBuilder) Field(name string, c AnyConverter) *ObjectBuilder {
	b.children = append(b.children, childSpec{name: name, kind: kindField, conv: c})
	return b
}

// Subform nests another object shape as a required sub-structure.
func (b *ObjectBuilder) Subform(name string, sub *ObjectBuilder) *ObjectBuilder {
	b.children = append(b.children, childSpec{name: name, kind: kindSubform, sub: sub})
	return b
}

// Optional nests another object shape behind a presence toggle, initially
// absent. Toggle it via Group.OptionalAt.
func (b *ObjectBuilder) Optional(name string, sub *ObjectBuilder) *ObjectBuilder {
	b.children = append(b.children, childSpec{name: name, kind: kindOptional, sub: sub})
	return b
}

// List nests a dynamically sized, key-addressed list of object shapes,
// initially empty. Manage items via Group.ListAt.
func (b *ObjectBuilder) List(name string, sub *ObjectBuilder) *ObjectBuilder {
	b.children = append(b.children, childSpec{name: name, kind: kindList, sub: sub})
	return b
}

// Build validates the shape and returns an untyped Group assembling a
// map[string]any keyed by field name.
func (b *ObjectBuilder) Build() (*formstate.Group[map[string]any], error) {
	children, err := b.buildChildren()
	if err != nil {
		return nil, err
	}
	names := b.names()
	return formstate.NewGroup(children, mapAssemble(names), mapDisassemble(names))
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *formstate.Group[map[string]any] {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

func (b *ObjectBuilder) names() []string {
	out := make([]string, len(b.children))
	for i, cs := range b.children {
		out[i] = cs.name
	}
	return out
}

// buildChildren stamps one node per child spec. Nested shapes are validated
// here once, so the list prototypes stamped later cannot fail.
func (b *ObjectBuilder) buildChildren() ([]formstate.Child, error) {
	out := make([]formstate.Child, len(b.children))
	for i, cs := range b.children {
		switch cs.kind {
		case kindField:
			out[i] = formstate.Child{Name: cs.name, Node: cs.conv.newField()}
		case kindSubform:
			g, err := cs.sub.Build()
			if err != nil {
				return nil, err
			}
			out[i] = formstate.Child{Name: cs.name, Node: g}
		case kindOptional:
			g, err := cs.sub.Build()
			if err != nil {
				return nil, err
			}
			out[i] = formstate.Child{Name: cs.name, Node: formstate.NewOptional(g)}
		case kindList:
			if _, err := cs.sub.Build(); err != nil {
				return nil, err
			}
			proto := cs.sub
			out[i] = formstate.Child{Name: cs.name, Node: formstate.NewList(func() formstate.Node {
				return proto.MustBuild()
			})}
		}
	}
	return out, nil
}

// mapAssemble merges the collected child values over the base map in
// declaration order.
func mapAssemble(names []string) func(map[string]any, []any) (map[string]any, error) {
	return func(base map[string]any, vals []any) (map[string]any, error) {
		out := make(map[string]any, len(base)+len(names))
		for k, v := range base {
			out[k] = v
		}
		for i, name := range names {
			out[name] = vals[i]
		}
		return out, nil
	}
}

// mapDisassemble reads child fragments back out of a model map; missing keys
// seed the child to its zero state.
func mapDisassemble(names []string) func(map[string]any) ([]any, error) {
	return func(m map[string]any) ([]any, error) {
		vals := make([]any, len(names))
		for i, name := range names {
			vals[i] = m[name]
		}
		return vals, nil
	}
}
