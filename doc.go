package formstate

// Package formstate provides:
//
// - A typed form-state engine keeping raw string inputs in sync with a strongly typed model
// - A field state machine (empty/valid/invalid, touched, submit-attempted) over pure converters
// - Recursive composition: groups, optional subforms, and keyed lists of subforms
// - A stable error model via FieldErrors (path, code, message) collecting every failure at once
//
// Design policy:
// - Keep only public APIs in the root package; the node set {Field, Group, Optional, List} is closed.
// - Place stock converters under convert/, the runtime binding layer under dsl/,
//   the YAML form-definition loader under formyaml/, and the CLI under cmd/formstate.
// - Prefer black-box testing against public APIs.
//
// The engine is single-threaded and synchronous: every operation runs to
// completion with no blocking and no internal locking. Hosts that share a
// form across goroutines must serialize access externally.
//
// Typical usage:
//
//	form := buildForm() // via dsl or formyaml
//	_ = form.SetInput(formstate.NewPath("username"), "alice")
//	model, err := form.Submit()
//	snap := form.Snapshot()
