// Package io reads and writes dataset files and report documents as JSON or
// YAML.
package io

import (
	"encoding/json"
	"errors"
	"fmt"
	stdio "io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/yousci/yousci-cli/internal/dataset"
)

const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DatasetFile is the on-disk shape of a dataset: the two record sets before
// the join.
type DatasetFile struct {
	Formation []dataset.FormationRecord `json:"formation" yaml:"formation"`
	Charges   []dataset.ChargeRecord    `json:"charges" yaml:"charges"`
}

// BuiltIn returns the built-in records as a DatasetFile.
func BuiltIn() DatasetFile {
	return DatasetFile{Formation: dataset.Formation(), Charges: dataset.Charges()}
}

// ResolveFormat normalises format. "auto" (or empty) picks YAML for .yaml and
// .yml paths and JSON otherwise.
func ResolveFormat(path, format string) (string, error) {
	actual := strings.ToLower(strings.TrimSpace(format))
	switch actual {
	case "", FormatAuto:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		default:
			return FormatJSON, nil
		}
	case "yml":
		return FormatYAML, nil
	case FormatJSON, FormatYAML:
		return actual, nil
	}
	return "", fmt.Errorf("unsupported format: %q (expected json|yaml|auto)", format)
}

// checkExtension fails when an explicit format contradicts the file extension.
func checkExtension(path, format string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch format {
	case FormatYAML:
		if ext == ".json" {
			return fmt.Errorf("output path extension %q does not match format %q", ext, format)
		}
	case FormatJSON:
		if ext == ".yaml" || ext == ".yml" {
			return fmt.Errorf("output path extension %q does not match format %q", ext, format)
		}
	}
	return nil
}

// Encode writes v to w in format (json or yaml).
func Encode(w stdio.Writer, v any, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported format: %q", format)
}

// Decode reads one document from r into v. Unknown fields are rejected.
func Decode(r stdio.Reader, v any, format string) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	return fmt.Errorf("unsupported format: %q", format)
}

// ReadDataset reads a dataset file. format can be "json", "yaml" or "auto".
func ReadDataset(path, format string) (DatasetFile, error) {
	actual, err := ResolveFormat(path, format)
	if err != nil {
		return DatasetFile{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return DatasetFile{}, err
	}
	defer f.Close()

	var d DatasetFile
	if err := Decode(f, &d, actual); err != nil {
		if errors.Is(err, stdio.EOF) {
			return DatasetFile{}, fmt.Errorf("read dataset %s: empty file", path)
		}
		return DatasetFile{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(d.Formation) == 0 {
		return DatasetFile{}, fmt.Errorf("read dataset %s: no formation records", path)
	}
	return d, nil
}

// WriteDocument writes v to outputPath, creating parent directories. format
// can be "json", "yaml" or "auto"; an explicit format must agree with the
// file extension.
func WriteDocument(v any, outputPath, format string) error {
	actual, err := ResolveFormat(outputPath, format)
	if err != nil {
		return err
	}
	if err := checkExtension(outputPath, actual); err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := Encode(f, v, actual); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return f.Close()
}
