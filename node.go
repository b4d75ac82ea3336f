package formstate

// Kind discriminates the closed set of node types a form tree is built from.
type Kind int

const (
	KindField Kind = iota
	KindGroup
	KindOptional
	KindList
)

// Node is one node of a form tree: a *Field[T], a *Group[M], an *Optional or
// a *List. The set is closed (the routing methods are unexported) so that
// traversal in setInput/submit can handle every case exhaustively.
type Node interface {
	Kind() Kind

	// setInput routes a raw input update. prefix is the absolute path of this
	// node, at the segment that selected it, rest the remaining segments.
	setInput(prefix Path, at Segment, rest Path, raw string) error

	// find resolves the node addressed by rest relative to this node.
	find(prefix Path, at Segment, rest Path) (Node, error)

	// submit evaluates the subtree rooted here, marking submit-attempted as it
	// goes. It either returns the subtree's value or appends every failure to
	// errs and reports ok=false.
	submit(prefix Path, errs *FieldErrors) (val any, ok bool)

	markSubmitAttempted()
	snapshot(prefix Path, snap Snapshot)

	// reset seeds the subtree from a model fragment without counting as user
	// interaction. nil means "zero": empty fields, absent optionals, no items.
	reset(model any) error

	isEmpty() bool
	clone() Node
}
