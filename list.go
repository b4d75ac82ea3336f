package formstate

import (
	"fmt"

	"github.com/google/uuid"
)

// List decorates a node prototype with a dynamically sized, ordered set of
// instances. Items are addressed by a stable Key that survives reordering and
// is distinct from the positional index, so paths never alias a since-removed
// item.
type List struct {
	prototype func() Node
	items     []listItem
}

type listItem struct {
	key  Key
	node Node
}

// NewList builds an empty list over the given prototype factory. The factory
// must return a fresh, independent node per call.
func NewList(prototype func() Node) *List {
	return &List{prototype: prototype}
}

func (l *List) Kind() Kind { return KindList }

// newListKey issues a fresh identity token. UUIDv7 keys are unique for the
// wrapper's lifetime and never reused, even after removal.
func newListKey() Key {
	return Key(uuid.Must(uuid.NewV7()).String())
}

// Add appends a fresh empty instance stamped from the prototype and returns
// its key.
func (l *List) Add() Key {
	key := newListKey()
	l.items = append(l.items, listItem{key: key, node: l.prototype()})
	return key
}

// AddValue appends a fresh instance seeded from the given model fragment.
func (l *List) AddValue(model any) (Key, error) {
	n := l.prototype()
	if err := n.reset(model); err != nil {
		return "", err
	}
	key := newListKey()
	l.items = append(l.items, listItem{key: key, node: n})
	return key, nil
}

// Remove deletes the item with the given key. Later updates naming that key
// fail with ErrUnknownKey.
func (l *List) Remove(key Key) error {
	for i, it := range l.items {
		if it.key == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return unknownKeyError(nil, key)
}

// Reorder rearranges items to the given key order. keys must be a permutation
// of the current keys; otherwise ErrInvalidReorder is reported and the list
// is left unchanged. Reordering never changes an item's identity or state.
func (l *List) Reorder(keys []Key) error {
	if len(keys) != len(l.items) {
		return fmt.Errorf("%w: got %d keys for %d items", ErrInvalidReorder, len(keys), len(l.items))
	}
	byKey := make(map[Key]listItem, len(l.items))
	for _, it := range l.items {
		byKey[it.key] = it
	}
	next := make([]listItem, 0, len(keys))
	seen := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidReorder, k)
		}
		seen[k] = struct{}{}
		it, ok := byKey[k]
		if !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidReorder, k)
		}
		next = append(next, it)
	}
	l.items = next
	return nil
}

// Keys returns the item keys in current order.
func (l *List) Keys() []Key {
	out := make([]Key, len(l.items))
	for i, it := range l.items {
		out[i] = it.key
	}
	return out
}

// Len reports the number of items.
func (l *List) Len() int { return len(l.items) }

// Item returns the node for the given key.
func (l *List) Item(key Key) (Node, bool) {
	for _, it := range l.items {
		if it.key == key {
			return it.node, true
		}
	}
	return nil, false
}

func (l *List) setInput(prefix Path, at Segment, rest Path, raw string) error {
	if !at.HasKey {
		return unknownPathError(prefix.concat(rest))
	}
	for _, it := range l.items {
		if it.key == at.Key {
			return it.node.setInput(prefix, Segment{Name: at.Name}, rest, raw)
		}
	}
	return unknownKeyError(prefix, at.Key)
}

func (l *List) find(prefix Path, at Segment, rest Path) (Node, error) {
	if !at.HasKey {
		if len(rest) == 0 {
			return l, nil
		}
		return nil, unknownPathError(prefix.concat(rest))
	}
	for _, it := range l.items {
		if it.key == at.Key {
			return it.node.find(prefix, Segment{Name: at.Name}, rest)
		}
	}
	return nil, unknownKeyError(prefix, at.Key)
}

// submit evaluates items in current order; the aggregated value is a []any of
// child models in the same order.
func (l *List) submit(prefix Path, errs *FieldErrors) (any, bool) {
	vals := make([]any, 0, len(l.items))
	ok := true
	for _, it := range l.items {
		v, vok := it.node.submit(prefix.withKey(it.key), errs)
		if !vok {
			ok = false
			continue
		}
		vals = append(vals, v)
	}
	if !ok {
		return nil, false
	}
	return vals, true
}

func (l *List) markSubmitAttempted() {
	for _, it := range l.items {
		it.node.markSubmitAttempted()
	}
}

func (l *List) snapshot(prefix Path, snap Snapshot) {
	for _, it := range l.items {
		it.node.snapshot(prefix.withKey(it.key), snap)
	}
}

// reset replaces the item set with fresh instances seeded from model, which
// must be nil or a []any of model fragments. New keys are issued; keys are
// never reused across resets.
func (l *List) reset(model any) error {
	l.items = nil
	if model == nil {
		return nil
	}
	vals, ok := model.([]any)
	if !ok {
		return &ParseError{Code: CodeParseError, Message: "model value type mismatch"}
	}
	for _, v := range vals {
		if _, err := l.AddValue(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) isEmpty() bool {
	for _, it := range l.items {
		if !it.node.isEmpty() {
			return false
		}
	}
	return true
}

func (l *List) clone() Node {
	items := make([]listItem, len(l.items))
	for i, it := range l.items {
		items[i] = listItem{key: it.key, node: it.node.clone()}
	}
	return &List{prototype: l.prototype, items: items}
}
