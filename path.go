package formstate

import "strings"

// Key identifies one list item independently of its position. Keys are issued
// by List.Add, are unique for the wrapper's lifetime, and are never reused,
// even after removal.
type Key string

// Segment is one step of a Path: a field name, optionally carrying the Key of
// a list item when the named child is a List.
type Segment struct {
	Name string
	Key  Key
	// HasKey distinguishes "no key" from an empty key string.
	HasKey bool
}

// Path addresses one node within a form tree. Paths are value types built
// transiently per event; engine operations never retain them.
type Path []Segment

// NewPath builds a path of plain (keyless) segments.
func NewPath(names ...string) Path {
	p := make(Path, 0, len(names))
	for _, n := range names {
		p = append(p, Segment{Name: n})
	}
	return p
}

// Field returns a new path with a plain segment appended.
func (p Path) Field(name string) Path {
	return p.push(Segment{Name: name})
}

// Item returns a new path with a keyed list segment appended.
func (p Path) Item(name string, key Key) Path {
	return p.push(Segment{Name: name, Key: key, HasKey: true})
}

func (p Path) push(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

func (p Path) concat(rest Path) Path {
	out := make(Path, 0, len(p)+len(rest))
	out = append(out, p...)
	return append(out, rest...)
}

// withKey returns a copy of p whose final segment carries the given list key.
func (p Path) withKey(key Key) Path {
	if len(p) == 0 {
		return p
	}
	out := make(Path, len(p))
	copy(out, p)
	out[len(out)-1].Key = key
	out[len(out)-1].HasKey = true
	return out
}

// String renders the path as a JSON-Pointer-like string, with list keys as
// their own token (for example: /addresses/018f3c.../city). The empty path
// renders as /.
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(seg.Name)
		if seg.HasKey {
			b.WriteByte('/')
			b.WriteString(string(seg.Key))
		}
	}
	return b.String()
}

// MarshalText renders the path for JSON/YAML surfaces.
func (p Path) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
