// Package formyaml loads form definitions from YAML documents and builds
// runtime-configured forms from them.
//
// A definition is a tree of field entries. Leaf entries carry a converter
// type name; entries with nested fields become subforms, optional sections
// or lists:
//
//	fields:
//	  - name: username
//	    type: string
//	  - name: port
//	    type: int64
//	    min: 1
//	    max: 65535
//	  - name: billing
//	    optional: true
//	    fields:
//	      - name: card
//	        type: string
//	  - name: addresses
//	    list: true
//	    fields:
//	      - name: street
//	        type: string
//
// Load decodes and validates a definition and returns the built form.
// Unknown YAML keys are rejected so typos in definitions surface early.
package formyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	formstate "github.com/reoring/formstate"
	"github.com/reoring/formstate/convert"
	"github.com/reoring/formstate/dsl"
	"gopkg.in/yaml.v3"
)

// Definition is the root of a YAML form definition.
type Definition struct {
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes one entry of a definition. Exactly one of Type or
// Fields must be set: Type makes a leaf input, Fields makes a nested
// section. Optional and List refine nested sections; Min and Max apply
// to the int64 type only.
type FieldDef struct {
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	Min      *int64     `yaml:"min"`
	Max      *int64     `yaml:"max"`
	Optional bool       `yaml:"optional"`
	List     bool       `yaml:"list"`
	Fields   []FieldDef `yaml:"fields"`
}

// Parse decodes a YAML definition without building a form. Unknown keys
// are an error.
func Parse(data []byte) (Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, errors.New("formyaml: empty definition")
		}
		return Definition{}, fmt.Errorf("formyaml: decode: %w", err)
	}
	if err := validate(def.Fields, ""); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Load decodes a YAML definition and builds the form it describes.
func Load(data []byte) (*formstate.Group[map[string]any], error) {
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// LoadFile reads and loads a definition from a file on disk.
func LoadFile(path string) (*formstate.Group[map[string]any], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Build constructs the form described by an already-parsed definition.
func Build(def Definition) (*formstate.Group[map[string]any], error) {
	b, err := builderFor(def.Fields, "")
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Paths returns the addressable input paths of the definition in
// declaration order. List entries render their element segment as
// "name[]" since keys only exist at runtime.
func (d Definition) Paths() []string {
	var out []string
	collectPaths(d.Fields, "", &out)
	return out
}

func collectPaths(defs []FieldDef, prefix string, out *[]string) {
	for _, fd := range defs {
		seg := prefix + "/" + fd.Name
		if fd.List {
			collectPaths(fd.Fields, seg+"/[]", out)
			continue
		}
		if len(fd.Fields) > 0 {
			collectPaths(fd.Fields, seg, out)
			continue
		}
		*out = append(*out, seg)
	}
}

func validate(defs []FieldDef, at string) error {
	seen := make(map[string]struct{}, len(defs))
	for _, fd := range defs {
		where := at + "/" + fd.Name
		if fd.Name == "" {
			return fmt.Errorf("formyaml: entry under %q has no name", at+"/")
		}
		if _, dup := seen[fd.Name]; dup {
			return fmt.Errorf("formyaml: duplicate field name at %s", where)
		}
		seen[fd.Name] = struct{}{}
		hasType := fd.Type != ""
		hasFields := len(fd.Fields) > 0
		switch {
		case hasType && hasFields:
			return fmt.Errorf("formyaml: %s sets both type and fields", where)
		case !hasType && !hasFields:
			return fmt.Errorf("formyaml: %s sets neither type nor fields", where)
		case hasType && (fd.Optional || fd.List):
			return fmt.Errorf("formyaml: %s: optional and list require nested fields", where)
		case fd.Optional && fd.List:
			return fmt.Errorf("formyaml: %s is both optional and list", where)
		}
		if hasType {
			if _, err := converterFor(fd); err != nil {
				return fmt.Errorf("formyaml: %s: %w", where, err)
			}
			continue
		}
		if err := validate(fd.Fields, where); err != nil {
			return err
		}
	}
	return nil
}

func builderFor(defs []FieldDef, at string) (*dsl.ObjectBuilder, error) {
	b := dsl.Object()
	for _, fd := range defs {
		where := at + "/" + fd.Name
		if fd.Type != "" {
			c, err := converterFor(fd)
			if err != nil {
				return nil, fmt.Errorf("formyaml: %s: %w", where, err)
			}
			b = b.Field(fd.Name, c)
			continue
		}
		sub, err := builderFor(fd.Fields, where)
		if err != nil {
			return nil, err
		}
		switch {
		case fd.Optional:
			b = b.Optional(fd.Name, sub)
		case fd.List:
			b = b.List(fd.Name, sub)
		default:
			b = b.Subform(fd.Name, sub)
		}
	}
	return b, nil
}

func converterFor(fd FieldDef) (dsl.AnyConverter, error) {
	switch fd.Type {
	case "string":
		return dsl.Of(convert.String()), nil
	case "optional_string":
		return dsl.Of(convert.OptionalString()), nil
	case "string_slice":
		return dsl.Of(convert.StringSlice()), nil
	case "int64":
		if fd.Min != nil || fd.Max != nil {
			if fd.Min == nil || fd.Max == nil {
				return dsl.AnyConverter{}, errors.New("min and max must be set together")
			}
			return dsl.Of(convert.Int64Between(*fd.Min, *fd.Max)), nil
		}
		return dsl.Of(convert.Int64()), nil
	case "optional_int64":
		return dsl.Of(convert.OptionalInt64()), nil
	case "float64":
		return dsl.Of(convert.Float64()), nil
	case "bool":
		return dsl.Of(convert.Bool()), nil
	case "time_rfc3339":
		return dsl.Of(convert.TimeRFC3339()), nil
	default:
		return dsl.AnyConverter{}, fmt.Errorf("unknown field type %q", fd.Type)
	}
}
