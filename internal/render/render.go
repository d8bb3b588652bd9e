// Package render writes a Report to an output stream as JSON, YAML or a
// fixed-width text table.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Guliveer/machealth/internal/models"
)

// Format selects the output encoding.
type Format string

const (
	FormatCompact Format = "compact"
	FormatPretty  Format = "pretty"
	FormatYAML    Format = "yaml"
	FormatTable   Format = "table"
)

// Valid reports whether f names a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatCompact, FormatPretty, FormatYAML, FormatTable:
		return true
	}
	return false
}

// SelectFormat resolves the output flags. Table wins over pretty, pretty over
// yaml; with none set the fallback is returned.
func SelectFormat(table, pretty, yml bool, fallback Format) Format {
	switch {
	case table:
		return FormatTable
	case pretty:
		return FormatPretty
	case yml:
		return FormatYAML
	case fallback.Valid():
		return fallback
	default:
		return FormatCompact
	}
}

// Render writes r to w in the given format, newline-terminated.
func Render(w io.Writer, r *models.Report, f Format) error {
	switch f {
	case FormatCompact, "":
		return writeJSON(w, r, "")
	case FormatPretty:
		return writeJSON(w, r, "  ")
	case FormatYAML:
		return writeYAML(w, r)
	case FormatTable:
		if _, err := io.WriteString(w, Table(r)+"\n"); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func writeJSON(w io.Writer, r *models.Report, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, r *models.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return nil
}
