// Package schemafile loads record shapes from YAML documents, so tools can
// describe a file's layout without compiling a schema into the binary.
//
// A schema document is a list of fields:
//
//	fields:
//	  - name: w
//	    type: float?
//	    rename: BigW
//	  - name: x
//	    type: int
//	  - name: score
//	    type: int|float
//
// Type strings use the same syntax as codec.ParseTypeExpr: scalar kind
// names, "|" for alternatives, a trailing "?" for optional, and any other
// word for an extension type resolved at compile time.
package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/typerow/typerow/codec"
	"github.com/typerow/typerow/errors"
)

// FieldSpec is one field entry in a schema document.
type FieldSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Rename string `yaml:"rename,omitempty"`
}

// File is the top-level schema document.
type File struct {
	Fields []FieldSpec `yaml:"fields"`
}

// Load reads and parses a schema document from disk.
func Load(path string) (*codec.Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "reading schema file")
	}
	return Parse(data)
}

// Parse builds a shape from YAML schema bytes.
func Parse(data []byte) (*codec.Shape, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "parsing schema document")
	}
	if len(f.Fields) == 0 {
		return nil, errors.InvalidConfig("schema document declares no fields")
	}

	fields := make([]codec.Field, 0, len(f.Fields))
	for i, fs := range f.Fields {
		if fs.Name == "" {
			return nil, errors.InvalidConfig(fmt.Sprintf("field %d: missing name", i+1))
		}
		if fs.Type == "" {
			return nil, errors.InvalidConfig(fmt.Sprintf("field %q: missing type", fs.Name))
		}
		t, err := codec.ParseTypeExpr(fs.Type)
		if err != nil {
			return nil, err
		}
		fields = append(fields, codec.Field{Name: fs.Name, Type: t, Rename: fs.Rename})
	}
	return codec.NewShape(fields...), nil
}
