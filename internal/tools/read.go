package tools

import (
	"fmt"
	"os"
)

// ReadFile returns the contents of a file at a relative path.
type ReadFile struct{}

// NewReadFile creates the read_file tool.
func NewReadFile() *ReadFile { return &ReadFile{} }

func (*ReadFile) Describe() Descriptor {
	return Descriptor{
		Name: "read_file",
		Description: "Read the contents of a given relative file path. " +
			"Use this when you want to see what is inside a file. " +
			"Do not use this with directory names.",
		Params: []Param{
			{
				Name:        "path",
				Description: "The relative path of a file in the working directory.",
				Required:    true,
			},
		},
	}
}

func (*ReadFile) Execute(input map[string]any) (string, error) {
	path := stringArg(input, "path")
	if path == "" {
		return "", validationf("path must not be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
