package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EditFile performs a global substring replacement in a text file, or
// creates the file when it does not exist and old_str is empty.
type EditFile struct{}

// NewEditFile creates the edit_file tool.
func NewEditFile() *EditFile { return &EditFile{} }

func (*EditFile) Describe() Descriptor {
	return Descriptor{
		Name: "edit_file",
		Description: "Make edits to a text file. " +
			"Replaces every occurrence of 'old_str' with 'new_str' in the file at 'path'. " +
			"'old_str' and 'new_str' must be different. " +
			"If the file does not exist and 'old_str' is empty, the file is created with 'new_str' as its content.",
		Params: []Param{
			{
				Name:        "path",
				Description: "The relative path of the file to edit.",
				Required:    true,
			},
			{
				Name:        "old_str",
				Description: "Text to search for. Every occurrence is replaced.",
				Required:    true,
			},
			{
				Name:        "new_str",
				Description: "Text to replace old_str with.",
				Required:    true,
			},
		},
	}
}

func (*EditFile) Execute(input map[string]any) (string, error) {
	path := stringArg(input, "path")
	oldStr := stringArg(input, "old_str")
	newStr := stringArg(input, "new_str")

	if path == "" {
		return "", validationf("path must not be empty")
	}
	if oldStr == newStr {
		return "", validationf("old_str and new_str must be different")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && oldStr == "" {
			return createFile(path, newStr)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	updated := strings.ReplaceAll(content, oldStr, newStr)
	if updated == content {
		return "no changes made", nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return "OK", nil
}

// createFile writes a new file, creating parent directories as needed.
func createFile(path, content string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	return fmt.Sprintf("Successfully created file %s", path), nil
}
