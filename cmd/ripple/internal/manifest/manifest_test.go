package manifest

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/go-ripple/ripple/pkg/view"
)

func TestBuildCoversEveryKind(t *testing.T) {
	m, err := Build("testpkg", "v1.2.0")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(m.Kinds) != len(view.Kinds()) {
		t.Fatalf("manifest has %d kinds, registry has %d", len(m.Kinds), len(view.Kinds()))
	}
	for i, e := range view.Kinds() {
		k := m.Kinds[i]
		if k.Name != e.Name {
			t.Errorf("kind %d name = %q, want %q", i, k.Name, e.Name)
		}
		if k.ID != e.ID.String() {
			t.Errorf("%s id = %q, want %q", k.Name, k.ID, e.ID)
		}
		if len(k.ID) != 32 {
			t.Errorf("%s id %q should be 32 hex chars", k.Name, k.ID)
		}
	}
}

func TestBuildFieldShapes(t *testing.T) {
	m, err := Build("testpkg", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	byName := make(map[string]Kind)
	for _, k := range m.Kinds {
		byName[k.Name] = k
	}

	wantFields := map[string]map[string]string{
		"Toggle":    {"IsOn": "binding.bool", "Label": "view"},
		"Slider":    {"Value": "binding.number", "Min": "number", "Max": "number", "Step": "number", "Label": "view"},
		"Text":      {"Content": "computed.text"},
		"TextField": {"Value": "binding.text", "Prompt": "text", "Secure": "bool"},
		"Button":    {"Label": "view", "Action": "action", "Role": "enum.ButtonRole"},
		"Stack":     {"Axis": "enum.Axis", "Spacing": "number", "Children": "view[]"},
		"Grid":      {"Columns": "int", "Spacing": "number", "Children": "view[]"},
		"Video":     {"Source": "text", "AutoPlay": "bool", "Muted": "binding.bool"},
	}
	for kind, want := range wantFields {
		k, ok := byName[kind]
		if !ok {
			t.Errorf("manifest missing kind %s", kind)
			continue
		}
		got := make(map[string]string)
		for _, f := range k.Fields {
			got[f.Name] = f.Type
		}
		for name, typ := range want {
			if got[name] != typ {
				t.Errorf("%s.%s type = %q, want %q", kind, name, got[name], typ)
			}
		}
	}

	if len(byName["Divider"].Fields) != 0 {
		t.Error("Divider should have no fields")
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	m, err := Build("testpkg", "v0.3.0")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Encode(&buf, "yaml"); err != nil {
		t.Fatalf("Encode yaml: %v", err)
	}

	var decoded Manifest
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Package != "testpkg" || decoded.MinHostVersion != "v0.3.0" {
		t.Errorf("decoded header = %+v", decoded)
	}
	if len(decoded.Kinds) != len(m.Kinds) {
		t.Errorf("decoded %d kinds, want %d", len(decoded.Kinds), len(m.Kinds))
	}
}

func TestEncodeJSON(t *testing.T) {
	m, err := Build("testpkg", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Encode(&buf, "json"); err != nil {
		t.Fatalf("Encode json: %v", err)
	}

	var decoded Manifest
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Kinds) != len(m.Kinds) {
		t.Errorf("decoded %d kinds, want %d", len(decoded.Kinds), len(m.Kinds))
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	m, err := Build("testpkg", "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := m.Encode(&bytes.Buffer{}, "toml"); err == nil {
		t.Error("Encode should reject unknown formats")
	}
}
