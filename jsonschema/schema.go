// Package jsonschema exports a JSON Schema describing the model a form
// definition submits. The output documents the submit payload for API
// consumers; it is not used by the engine itself.
package jsonschema

import (
	json "github.com/goccy/go-json"

	"github.com/reoring/formstate/formyaml"
)

// Schema is a minimal JSON Schema representation, covering the shapes a
// form definition can produce.
type Schema struct {
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Minimum *int64 `json:"minimum,omitempty"`
	Maximum *int64 `json:"maximum,omitempty"`

	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	Items *Schema `json:"items,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
}

// FromDefinition builds the schema of the map produced by submitting a
// form built from def. Optional sections and optional converters become
// nullable via oneOf; everything else is listed as required since the
// engine only submits when all fields parse.
func FromDefinition(def formyaml.Definition) *Schema {
	return objectSchema(def.Fields)
}

// Encode renders the schema as indented JSON.
func Encode(s *Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func objectSchema(defs []formyaml.FieldDef) *Schema {
	out := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(defs)),
		AdditionalProperties: false,
	}
	for _, fd := range defs {
		out.Properties[fd.Name] = fieldSchema(fd)
		out.Required = append(out.Required, fd.Name)
	}
	return out
}

func fieldSchema(fd formyaml.FieldDef) *Schema {
	switch {
	case fd.List:
		return &Schema{Type: "array", Items: objectSchema(fd.Fields)}
	case fd.Optional:
		return nullable(objectSchema(fd.Fields))
	case len(fd.Fields) > 0:
		return objectSchema(fd.Fields)
	}
	switch fd.Type {
	case "string":
		return &Schema{Type: "string"}
	case "optional_string":
		return nullable(&Schema{Type: "string"})
	case "string_slice":
		return &Schema{Type: "array", Items: &Schema{Type: "string"}}
	case "int64":
		return &Schema{Type: "integer", Minimum: fd.Min, Maximum: fd.Max}
	case "optional_int64":
		return nullable(&Schema{Type: "integer"})
	case "float64":
		return &Schema{Type: "number"}
	case "bool":
		return &Schema{Type: "boolean"}
	case "time_rfc3339":
		return &Schema{Type: "string", Format: "date-time"}
	default:
		// unreachable for validated definitions
		return &Schema{}
	}
}

func nullable(s *Schema) *Schema {
	return &Schema{OneOf: []*Schema{s, {Type: "null"}}}
}
