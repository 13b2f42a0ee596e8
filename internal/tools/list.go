package tools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// vcsDirs are version-control metadata directories excluded from listings.
var vcsDirs = map[string]bool{
	".git": true,
	".hg":  true,
	".svn": true,
}

// ListFiles returns a nested JSON listing of a directory: directories map
// to their own nested listing, files map to null.
type ListFiles struct{}

// NewListFiles creates the list_files tool.
func NewListFiles() *ListFiles { return &ListFiles{} }

func (*ListFiles) Describe() Descriptor {
	return Descriptor{
		Name: "list_files",
		Description: "List files and directories at a given path. " +
			"Directories are listed recursively as nested objects and files map to null.",
		Params: []Param{
			{
				Name:        "path",
				Description: "Optional relative path to list files from. Defaults to the current directory if not provided.",
			},
		},
	}
}

func (*ListFiles) Execute(input map[string]any) (string, error) {
	path := stringArg(input, "path")
	if path == "" {
		path = "."
	}
	tree, err := listDir(path)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("encoding listing for %s: %w", path, err)
	}
	return string(out), nil
}

// listDir builds the nested listing for one directory level.
func listDir(path string) (map[string]any, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}
	tree := make(map[string]any, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if vcsDirs[name] {
				continue
			}
			sub, err := listDir(filepath.Join(path, name))
			if err != nil {
				return nil, err
			}
			tree[name] = sub
		} else {
			tree[name] = nil
		}
	}
	return tree, nil
}
