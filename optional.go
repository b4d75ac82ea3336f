package formstate

// Optional decorates a node with a presence toggle. While absent the inner
// node keeps its raw state (a cheap re-toggle preserves user edits) but is
// excluded from submit evaluation and error aggregation entirely, and
// contributes nil to the model.
type Optional struct {
	present bool
	inner   Node
}

// NewOptional wraps inner, initially absent.
func NewOptional(inner Node) *Optional {
	return &Optional{inner: inner}
}

func (o *Optional) Kind() Kind { return KindOptional }

// Present reports whether the inner node participates in validation.
func (o *Optional) Present() bool { return o.present }

// SetPresent toggles participation. Toggling off does not clear the inner
// raw state; toggling on re-enables validation on the next submit.
func (o *Optional) SetPresent(present bool) { o.present = present }

// Toggle flips presence and reports the new state.
func (o *Optional) Toggle() bool {
	o.present = !o.present
	return o.present
}

// Inner exposes the wrapped node.
func (o *Optional) Inner() Node { return o.inner }

// Routing passes through the wrapper: paths address the inner node directly.
// Updates are routed even while absent so retained edits stay addressable.
func (o *Optional) setInput(prefix Path, at Segment, rest Path, raw string) error {
	return o.inner.setInput(prefix, at, rest, raw)
}

func (o *Optional) find(prefix Path, at Segment, rest Path) (Node, error) {
	if len(rest) == 0 && !at.HasKey {
		return o, nil
	}
	return o.inner.find(prefix, at, rest)
}

func (o *Optional) submit(prefix Path, errs *FieldErrors) (any, bool) {
	if !o.present {
		return nil, true
	}
	return o.inner.submit(prefix, errs)
}

func (o *Optional) markSubmitAttempted() {
	if o.present {
		o.inner.markSubmitAttempted()
	}
}

func (o *Optional) snapshot(prefix Path, snap Snapshot) {
	if o.present {
		o.inner.snapshot(prefix, snap)
	}
}

func (o *Optional) reset(model any) error {
	if model == nil {
		o.present = false
		return o.inner.reset(nil)
	}
	o.present = true
	return o.inner.reset(model)
}

func (o *Optional) isEmpty() bool {
	return !o.present || o.inner.isEmpty()
}

func (o *Optional) clone() Node {
	return &Optional{present: o.present, inner: o.inner.clone()}
}
