package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/wellness-engine/internal/types"
)

// readJSONInput decodes the file at path into v. "-" reads stdin.
func readJSONInput(path string, stdin io.Reader, v any) error {
	if path == "-" {
		if err := types.DecodeJSON(stdin, v); err != nil {
			return fmt.Errorf("failed to read input from stdin: %w", err)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := types.DecodeJSON(f, v); err != nil {
		return fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return nil
}

// writeJSONOutput writes v as indented JSON to path, creating parent
// directories. An empty path or "-" writes to stdout.
func writeJSONOutput(path string, stdout io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
