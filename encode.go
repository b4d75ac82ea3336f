package formstate

import (
	json "github.com/goccy/go-json"
)

// EncodeSnapshot renders a snapshot as JSON for UI consumption, keyed by
// rendered path.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// EncodeFieldErrors renders the aggregate submit failures as a JSON array of
// {path, error} objects in traversal order.
func EncodeFieldErrors(fe FieldErrors) ([]byte, error) {
	return json.Marshal(fe)
}
