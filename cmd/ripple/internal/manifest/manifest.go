// Package manifest builds the host-binding manifest: the closed view-kind
// table with stable identifiers and payload field shapes, in a form host
// binding generators consume.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/go-ripple/ripple/pkg/app"
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/text"
	"github.com/go-ripple/ripple/pkg/view"
)

// Manifest is the generator output.
type Manifest struct {
	Package        string `yaml:"package" json:"package"`
	MinHostVersion string `yaml:"min_host_version,omitempty" json:"min_host_version,omitempty"`
	Kinds          []Kind `yaml:"kinds" json:"kinds"`
}

// Kind describes one payload kind.
type Kind struct {
	Name   string  `yaml:"name" json:"name"`
	ID     string  `yaml:"id" json:"id"`
	Fields []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Field describes one payload field as the boundary sees it.
type Field struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// payloads holds one zero instance per kind, in registry order, for shape
// reflection. Must stay in sync with the view registry; Build checks.
var payloads = []view.Payload{
	view.Container{},
	view.Stack{},
	view.Grid{},
	view.Scroll{},
	view.Overlay{},
	view.Button{},
	view.Link{},
	view.Text{},
	view.TextField{},
	view.Toggle{},
	view.Slider{},
	view.Stepper{},
	view.Photo{},
	view.Video{},
	view.LivePhoto{},
	view.Spacer{},
	view.Divider{},
	view.Empty{},
}

// Build assembles the manifest from the view kind registry.
func Build(pkg, minHostVersion string) (*Manifest, error) {
	kinds := view.Kinds()
	if len(payloads) != len(kinds) {
		return nil, fmt.Errorf("manifest covers %d kinds, registry has %d", len(payloads), len(kinds))
	}

	m := &Manifest{Package: pkg, MinHostVersion: minHostVersion}
	for i, entry := range kinds {
		p := payloads[i]
		if p.KindID() != entry.ID {
			return nil, fmt.Errorf("payload order mismatch at %s", entry.Name)
		}
		fields, err := payloadFields(p)
		if err != nil {
			return nil, fmt.Errorf("kind %s: %w", entry.Name, err)
		}
		m.Kinds = append(m.Kinds, Kind{
			Name:   entry.Name,
			ID:     entry.ID.String(),
			Fields: fields,
		})
	}
	return m, nil
}

// Encode writes the manifest in the given format ("yaml" or "json").
func (m *Manifest) Encode(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(m)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	default:
		return fmt.Errorf("unknown manifest format %q", format)
	}
}

func payloadFields(p view.Payload) ([]Field, error) {
	t := reflect.TypeOf(p)
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, err := fieldType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fields = append(fields, Field{Name: f.Name, Type: name})
	}
	return fields, nil
}

var (
	viewType           = reflect.TypeOf((*view.AnyView)(nil))
	actionType         = reflect.TypeOf((*app.Action)(nil))
	textType           = reflect.TypeOf(text.Value{})
	boolBindingType    = reflect.TypeOf((*reactive.Binding[bool])(nil))
	numberBindingType  = reflect.TypeOf((*reactive.Binding[float64])(nil))
	textBindingType    = reflect.TypeOf((*reactive.Binding[text.Value])(nil))
	boolComputedType   = reflect.TypeOf((*reactive.Computed[bool])(nil))
	numberComputedType = reflect.TypeOf((*reactive.Computed[float64])(nil))
	textComputedType   = reflect.TypeOf((*reactive.Computed[text.Value])(nil))
)

// fieldType maps a payload field's Go type to its boundary type name.
func fieldType(t reflect.Type) (string, error) {
	switch t {
	case viewType:
		return "view", nil
	case actionType:
		return "action", nil
	case textType:
		return "text", nil
	case boolBindingType:
		return "binding.bool", nil
	case numberBindingType:
		return "binding.number", nil
	case textBindingType:
		return "binding.text", nil
	case boolComputedType:
		return "computed.bool", nil
	case numberComputedType:
		return "computed.number", nil
	case textComputedType:
		return "computed.text", nil
	}

	switch t.Kind() {
	case reflect.Slice:
		elem, err := fieldType(t.Elem())
		if err != nil {
			return "", err
		}
		return elem + "[]", nil
	case reflect.Bool:
		return "bool", nil
	case reflect.Float64:
		return "number", nil
	case reflect.Int, reflect.Int32:
		if t.PkgPath() != "" {
			return "enum." + t.Name(), nil
		}
		return "int", nil
	}
	return "", fmt.Errorf("unmapped type %s", t)
}
