package tools

import (
	"testing"
)

// staticTool is a minimal Tool for registry tests.
type staticTool struct {
	name   string
	result string
}

func (s *staticTool) Describe() Descriptor {
	return Descriptor{Name: s.name, Description: "static test tool"}
}

func (s *staticTool) Execute(input map[string]any) (string, error) {
	return s.result, nil
}

func TestSchemaExport(t *testing.T) {
	d := Descriptor{
		Name:        "demo",
		Description: "demo tool",
		Params: []Param{
			{Name: "path", Description: "a file path", Required: true},
			{Name: "depth", Description: "how deep to go", Type: TypeInteger},
		},
	}

	schema := d.Schema()

	properties, ok := schema.Properties.(map[string]any)
	if !ok {
		t.Fatalf("expected properties map, got %T", schema.Properties)
	}
	if len(properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(properties))
	}

	path, ok := properties["path"].(map[string]any)
	if !ok {
		t.Fatalf("expected path property map, got %T", properties["path"])
	}
	// Untyped parameters default to string.
	if path["type"] != "string" {
		t.Errorf("expected path type string, got %v", path["type"])
	}
	if path["description"] != "a file path" {
		t.Errorf("expected path description, got %v", path["description"])
	}

	depth, ok := properties["depth"].(map[string]any)
	if !ok {
		t.Fatalf("expected depth property map, got %T", properties["depth"])
	}
	if depth["type"] != "integer" {
		t.Errorf("expected depth type integer, got %v", depth["type"])
	}

	if len(schema.Required) != 1 || schema.Required[0] != "path" {
		t.Errorf("expected required [path], got %v", schema.Required)
	}
}

func TestSchemaExportNoParams(t *testing.T) {
	schema := Descriptor{Name: "bare"}.Schema()

	properties, ok := schema.Properties.(map[string]any)
	if !ok {
		t.Fatalf("expected properties map, got %T", schema.Properties)
	}
	if len(properties) != 0 {
		t.Errorf("expected empty properties, got %v", properties)
	}
	if schema.Required == nil || len(schema.Required) != 0 {
		t.Errorf("expected empty required list, got %v", schema.Required)
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	alpha := &staticTool{name: "alpha"}
	beta := &staticTool{name: "beta"}

	r, err := NewRegistry(alpha, beta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}
	if all[0] != Tool(alpha) || all[1] != Tool(beta) {
		t.Error("registration order not preserved")
	}

	got, ok := r.Lookup("beta")
	if !ok || got != Tool(beta) {
		t.Error("expected to find beta by name")
	}
	if _, ok := r.Lookup("gamma"); ok {
		t.Error("expected lookup miss for unregistered name")
	}
}

func TestRegistryRejectsBadNames(t *testing.T) {
	if _, err := NewRegistry(&staticTool{name: ""}); err == nil {
		t.Error("expected error for empty tool name")
	}
	if _, err := NewRegistry(&staticTool{name: "dup"}, &staticTool{name: "dup"}); err == nil {
		t.Error("expected error for duplicate tool name")
	}
}

func TestRegistryDefinitions(t *testing.T) {
	r, err := NewRegistry(Defaults()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defs := r.Definitions()
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}

	wantNames := []string{"read_file", "list_files", "edit_file"}
	for i, def := range defs {
		if def.OfTool == nil {
			t.Fatalf("definition %d has no tool variant", i)
		}
		if def.OfTool.Name != wantNames[i] {
			t.Errorf("expected definition %d to be %s, got %s", i, wantNames[i], def.OfTool.Name)
		}
		if !def.OfTool.Description.Valid() || def.OfTool.Description.Value == "" {
			t.Errorf("definition %d has no description", i)
		}
	}
}
