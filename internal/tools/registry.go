package tools

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// Registry holds tools in registration order and resolves them by exact
// name. It is populated once at startup and read-only afterwards.
type Registry struct {
	ordered []Tool
	byName  map[string]Tool
}

// NewRegistry builds a registry from the given tools. Tools with empty or
// duplicate names are rejected.
func NewRegistry(ts ...Tool) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Tool, len(ts)),
	}
	for _, t := range ts {
		name := t.Describe().Name
		if name == "" {
			return nil, fmt.Errorf("tool has an empty name")
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", name)
		}
		r.ordered = append(r.ordered, t)
		r.byName[name] = t
	}
	return r, nil
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns the registered tools in registration order.
func (r *Registry) All() []Tool {
	return r.ordered
}

// Definitions exports every registered tool as an Anthropic tool definition,
// in registration order.
func (r *Registry) Definitions() []anthropic.ToolUnionParam {
	defs := make([]anthropic.ToolUnionParam, 0, len(r.ordered))
	for _, t := range r.ordered {
		d := t.Describe()
		defs = append(defs, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        d.Name,
				Description: anthropic.String(d.Description),
				InputSchema: d.Schema(),
			},
		})
	}
	return defs
}
