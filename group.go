package formstate

import (
	"errors"
	"fmt"
	"reflect"
)

// Child is one named entry of a Group, in declaration order.
type Child struct {
	Name string
	Node Node
}

// Group is a named, ordered collection of fields and nested nodes bound to a
// model type M. It routes input updates by path, implements submit over the
// whole subtree, and owns every descendant exclusively.
//
// The assemble callback builds M from the collected child values in
// declaration order and is invoked only when every child yielded a value.
// The disassemble callback is its inverse, used by Reset to seed fields from
// an existing model; it may be nil for forms that are never seeded.
type Group[M any] struct {
	children        []Child
	index           map[string]Node
	assemble        func(base M, vals []any) (M, error)
	disassemble     func(m M) ([]any, error)
	submitAttempted bool
}

// NewGroup validates the child set and returns a Group. Child names must be
// unique and non-empty; they are stable for the group's lifetime.
func NewGroup[M any](
	children []Child,
	assemble func(base M, vals []any) (M, error),
	disassemble func(m M) ([]any, error),
) (*Group[M], error) {
	if assemble == nil {
		return nil, errors.New("formstate: NewGroup requires an assemble callback")
	}
	idx := make(map[string]Node, len(children))
	for _, c := range children {
		if c.Name == "" {
			return nil, errors.New("formstate: child name must not be empty")
		}
		if c.Node == nil {
			return nil, fmt.Errorf("formstate: child %q has a nil node", c.Name)
		}
		if _, dup := idx[c.Name]; dup {
			return nil, fmt.Errorf("formstate: duplicate child name %q", c.Name)
		}
		idx[c.Name] = c.Node
	}
	cs := make([]Child, len(children))
	copy(cs, children)
	return &Group[M]{children: cs, index: idx, assemble: assemble, disassemble: disassemble}, nil
}

func (g *Group[M]) Kind() Kind { return KindGroup }

// Names returns the child names in declaration order.
func (g *Group[M]) Names() []string {
	out := make([]string, len(g.children))
	for i, c := range g.children {
		out[i] = c.Name
	}
	return out
}

// Child returns the direct child with the given name.
func (g *Group[M]) Child(name string) (Node, bool) {
	n, ok := g.index[name]
	return n, ok
}

// SetInput routes a raw input update to the field identified by path. The
// path must originate from this group's own shape; any miss reports
// ErrUnknownPath so a stale identifier cannot silently desynchronize UI and
// model.
func (g *Group[M]) SetInput(path Path, raw string) error {
	return g.setInput(nil, Segment{}, path, raw)
}

// At resolves the node addressed by path: the group itself for the empty
// path, otherwise a descendant field, group, or wrapper.
func (g *Group[M]) At(path Path) (Node, error) {
	return g.find(nil, Segment{}, path)
}

// OptionalAt resolves the Optional wrapper addressed by path.
func (g *Group[M]) OptionalAt(path Path) (*Optional, error) {
	n, err := g.At(path)
	if err != nil {
		return nil, err
	}
	o, ok := n.(*Optional)
	if !ok {
		return nil, unknownPathError(path)
	}
	return o, nil
}

// ListAt resolves the List wrapper addressed by path.
func (g *Group[M]) ListAt(path Path) (*List, error) {
	n, err := g.At(path)
	if err != nil {
		return nil, err
	}
	l, ok := n.(*List)
	if !ok {
		return nil, unknownPathError(path)
	}
	return l, nil
}

// Submit validates the whole tree and assembles the model from scratch.
// Every reachable field is marked submit-attempted. On failure the returned
// error is a FieldErrors carrying all failures in declaration order, not
// just the first; submitting again without input changes yields an identical
// result.
func (g *Group[M]) Submit() (M, error) {
	var zero M
	return g.SubmitUpdate(zero)
}

// SubmitUpdate is Submit folding the collected values over an existing base
// model instead of the zero value, so callers can apply a form as an edit to
// a previously loaded model.
func (g *Group[M]) SubmitUpdate(base M) (M, error) {
	var zero M
	var errs FieldErrors
	g.submitAttempted = true
	vals := make([]any, len(g.children))
	ok := true
	for i, c := range g.children {
		v, vok := c.Node.submit(Path{}.Field(c.Name), &errs)
		if !vok {
			ok = false
			continue
		}
		vals[i] = v
	}
	if !ok {
		return zero, errs
	}
	m, err := g.assemble(base, vals)
	if err != nil {
		return zero, FieldErrors{{Path: Path{}, Err: coerceParseError(err)}}
	}
	return m, nil
}

// Snapshot reports the state of every currently reachable field, keyed by
// rendered path. It never mutates the form.
func (g *Group[M]) Snapshot() Snapshot {
	snap := make(Snapshot)
	g.snapshot(nil, snap)
	return snap
}

// SubmitAttempted reports whether Submit or SubmitUpdate has run on this
// group since construction or the last Reset.
func (g *Group[M]) SubmitAttempted() bool { return g.submitAttempted }

// IsEmpty reports whether every field is empty, every optional absent or
// empty, and every list item empty.
func (g *Group[M]) IsEmpty() bool { return g.isEmpty() }

// Reset seeds all fields from an existing model via each converter's Format,
// clearing touched and submit-attempted flags. Requires a disassemble
// callback.
func (g *Group[M]) Reset(m M) error {
	if g.disassemble == nil {
		return errors.New("formstate: group has no disassemble callback")
	}
	vals, err := g.disassemble(m)
	if err != nil {
		return err
	}
	if len(vals) != len(g.children) {
		return fmt.Errorf("formstate: disassemble returned %d values for %d children", len(vals), len(g.children))
	}
	g.submitAttempted = false
	for i, c := range g.children {
		if err := c.Node.reset(vals[i]); err != nil {
			return fmt.Errorf("reset %q: %w", c.Name, err)
		}
	}
	return nil
}

// Clone deep-copies the whole tree, preserving raw inputs, flags, and list
// keys.
func (g *Group[M]) Clone() *Group[M] {
	return g.clone().(*Group[M])
}

// HasUnsavedChanges reports whether submitting the current inputs over the
// pristine model would change it. Invalid input counts as an unsaved change.
func (g *Group[M]) HasUnsavedChanges(pristine M) bool {
	updated, err := g.Clone().SubmitUpdate(pristine)
	if err != nil {
		return true
	}
	return !reflect.DeepEqual(pristine, updated)
}

// ValidationError re-evaluates the tree and returns the aggregate FieldErrors
// once a submit has been attempted, without re-marking any field. Before the
// first submit attempt it reports nil so users are not flagged while typing.
func (g *Group[M]) ValidationError() error {
	if !g.submitAttempted {
		return nil
	}
	_, err := g.Clone().Submit()
	return err
}

// ---- Node implementation ----

func (g *Group[M]) setInput(prefix Path, at Segment, rest Path, raw string) error {
	if at.HasKey {
		return unknownPathError(prefix.concat(rest))
	}
	if len(rest) == 0 {
		// A group is a branch, not an editable leaf.
		return unknownPathError(prefix)
	}
	seg := rest[0]
	child, ok := g.index[seg.Name]
	if !ok {
		return unknownPathError(prefix.push(seg))
	}
	return child.setInput(prefix.push(seg), seg, rest[1:], raw)
}

func (g *Group[M]) find(prefix Path, at Segment, rest Path) (Node, error) {
	if at.HasKey {
		return nil, unknownPathError(prefix.concat(rest))
	}
	if len(rest) == 0 {
		return g, nil
	}
	seg := rest[0]
	child, ok := g.index[seg.Name]
	if !ok {
		return nil, unknownPathError(prefix.push(seg))
	}
	return child.find(prefix.push(seg), seg, rest[1:])
}

func (g *Group[M]) submit(prefix Path, errs *FieldErrors) (any, bool) {
	g.submitAttempted = true
	vals := make([]any, len(g.children))
	ok := true
	for i, c := range g.children {
		v, vok := c.Node.submit(prefix.Field(c.Name), errs)
		if !vok {
			ok = false
			continue
		}
		vals[i] = v
	}
	if !ok {
		return nil, false
	}
	var base M
	m, err := g.assemble(base, vals)
	if err != nil {
		*errs = append(*errs, FieldError{Path: prefix, Err: coerceParseError(err)})
		return nil, false
	}
	return m, true
}

func (g *Group[M]) markSubmitAttempted() {
	g.submitAttempted = true
	for _, c := range g.children {
		c.Node.markSubmitAttempted()
	}
}

func (g *Group[M]) snapshot(prefix Path, snap Snapshot) {
	for _, c := range g.children {
		c.Node.snapshot(prefix.Field(c.Name), snap)
	}
}

func (g *Group[M]) reset(model any) error {
	g.submitAttempted = false
	if model == nil {
		for _, c := range g.children {
			if err := c.Node.reset(nil); err != nil {
				return fmt.Errorf("reset %q: %w", c.Name, err)
			}
		}
		return nil
	}
	m, ok := model.(M)
	if !ok {
		return &ParseError{Code: CodeParseError, Message: "model value type mismatch"}
	}
	return g.Reset(m)
}

func (g *Group[M]) isEmpty() bool {
	for _, c := range g.children {
		if !c.Node.isEmpty() {
			return false
		}
	}
	return true
}

func (g *Group[M]) clone() Node {
	cs := make([]Child, len(g.children))
	idx := make(map[string]Node, len(g.children))
	for i, c := range g.children {
		cp := c.Node.clone()
		cs[i] = Child{Name: c.Name, Node: cp}
		idx[c.Name] = cp
	}
	return &Group[M]{
		children:        cs,
		index:           idx,
		assemble:        g.assemble,
		disassemble:     g.disassemble,
		submitAttempted: g.submitAttempted,
	}
}
