// Package tools defines the capability contract between the agent and the
// local actions the model may request: a named, schema-described tool that
// can be executed with a map of arguments. The built-in set covers reading
// files, listing directories, and editing files.
package tools

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// ParamType enumerates the JSON schema types a tool parameter may declare.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
)

// Param describes one input parameter of a tool as exposed to the model.
type Param struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Type        ParamType `json:"type" yaml:"type"` // empty means TypeString
	Required    bool      `json:"required" yaml:"required"`
}

// Descriptor is the construction-time description of a tool. It is a plain
// value and never mutated after the tool is built.
type Descriptor struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Params      []Param `json:"params" yaml:"params"`
}

// Schema exports the descriptor's parameters as an Anthropic object schema:
// a type and description per property, plus the list of required parameter
// names. The export is pure; a descriptor with no parameters yields an empty
// property set and an empty required list.
func (d Descriptor) Schema() anthropic.ToolInputSchemaParam {
	properties := make(map[string]any, len(d.Params))
	required := []string{}
	for _, p := range d.Params {
		typ := p.Type
		if typ == "" {
			typ = TypeString
		}
		properties[p.Name] = map[string]any{
			"type":        string(typ),
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return anthropic.ToolInputSchemaParam{
		Properties: properties,
		Required:   required,
	}
}

// Tool is the capability contract. Execute takes the decoded tool_use input
// and returns a success payload, or an error that the dispatcher converts
// into an error tool result. Implementations must not panic across this
// boundary.
type Tool interface {
	Describe() Descriptor
	Execute(input map[string]any) (string, error)
}

// ValidationError reports arguments that violate a tool's contract before
// any file-system work happens. Dispatch treats it like any other tool
// error; the distinct type exists so callers can tell bad arguments apart
// from resource failures.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// stringArg extracts a string argument from decoded tool input, returning
// "" when the key is absent or not a string.
func stringArg(input map[string]any, key string) string {
	v, _ := input[key].(string)
	return v
}

// Defaults returns the built-in tool set in its canonical order.
func Defaults() []Tool {
	return []Tool{
		NewReadFile(),
		NewListFiles(),
		NewEditFile(),
	}
}
