// Package convert provides stock Converter implementations for common field
// types: trimmed strings, integers and floats with range checks, booleans,
// comma-separated slices, and RFC3339 timestamps. Each required converter
// rejects empty input with a required error; the Optional variants parse
// empty input to nil instead, so the same field machinery serves both.
package convert
