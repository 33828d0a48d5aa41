package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/brandguard/internal/schemas"
	"github.com/jonathan/brandguard/internal/types"
)

// loadBrand reads a brand snapshot JSON file, validates it against the
// embedded schema and decodes it.
func loadBrand(path string) (*types.BrandSnapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("brand snapshot path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brand snapshot %s: %w", path, err)
	}

	if err := schemas.ValidateBrandSnapshot(string(data)); err != nil {
		return nil, fmt.Errorf("brand snapshot %s is invalid: %w", path, err)
	}

	var brand types.BrandSnapshot
	if err := json.Unmarshal(data, &brand); err != nil {
		return nil, fmt.Errorf("failed to parse brand snapshot %s: %w", path, err)
	}

	if err := validator.New().Struct(&brand); err != nil {
		return nil, fmt.Errorf("brand snapshot %s failed validation: %w", path, err)
	}

	return &brand, nil
}

// loadContent resolves the content to validate: an inline argument, a file,
// or stdin when path is "-".
func loadContent(arg, path string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if path == "" {
		return "", fmt.Errorf("provide content as an argument or via --content")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read content from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
