package formstate

// Status is the derived validity of one field. It is always recomputable from
// the raw input and the converter; the engine caches it but the raw string
// stays the source of truth.
type Status int

const (
	StatusEmpty   Status = iota // Raw input is the empty string.
	StatusValid                 // Converter accepted the raw input.
	StatusInvalid               // Converter rejected a non-empty raw input.
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	}
	return "unknown"
}

// MarshalText renders the status for JSON/YAML surfaces.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// FieldState is the read-only per-field view exposed to UI layers.
// Err is populated whenever the converter rejected the raw input, including
// the required error behind an empty field; SubmitAttempted lets the UI
// decide when to surface it.
type FieldState struct {
	Status          Status      `json:"status"`
	Err             *ParseError `json:"error,omitempty"`
	Touched         bool        `json:"touched"`
	SubmitAttempted bool        `json:"submitAttempted"`
}

// Snapshot maps rendered field paths to their current state. Produced by
// Group.Snapshot; reading it never mutates the form.
type Snapshot map[string]FieldState
