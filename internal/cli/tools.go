package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seaward/remora/internal/tools"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to the model",
		Long:  "List every built-in tool with its description and parameters, exactly as described to the model.",
		Example: `  remora tools
  remora tools -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := tools.NewRegistry(tools.Defaults()...)
			if err != nil {
				return fmt.Errorf("registering tools: %w", err)
			}

			descriptors := make([]tools.Descriptor, 0, len(registry.All()))
			for _, t := range registry.All() {
				descriptors = append(descriptors, t.Describe())
			}

			switch outputFormat {
			case "json":
				return printJSON(descriptors)
			case "yaml":
				return printYAML(descriptors)
			default:
				headers := []string{"NAME", "PARAMS", "DESCRIPTION"}
				var rows [][]string
				for _, d := range descriptors {
					rows = append(rows, []string{d.Name, paramSummary(d), d.Description})
				}
				printTable(headers, rows)
				return nil
			}
		},
	}

	return cmd
}

// paramSummary renders a descriptor's parameters as a compact list,
// marking optional parameters with a trailing "?".
func paramSummary(d tools.Descriptor) string {
	if len(d.Params) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		name := p.Name
		if !p.Required {
			name += "?"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}
