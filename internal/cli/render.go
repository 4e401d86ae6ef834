package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/specialistvlad/paramgrid/internal/app"
	"github.com/specialistvlad/paramgrid/internal/validation"
	"gopkg.in/yaml.v3"
)

type validateOutput struct {
	Valid   bool               `json:"valid" yaml:"valid"`
	Entries []validation.Entry `json:"entries" yaml:"entries"`
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// formatValue renders a plain value the way it would be written in a
// pipeline file.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func keysText(keys []app.KeyInfo) func(io.Writer) error {
	return func(w io.Writer) error {
		t := newTable("KEY", "NAME", "TYPE", "SOURCE", "VALUE")
		for _, k := range keys {
			t.Row(k.Key, k.Name, k.Type, k.Source, formatValue(k.Value))
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
}

func validateText(report *validation.Report) func(io.Writer) error {
	return func(w io.Writer) error {
		if report.Len() == 0 {
			_, err := fmt.Fprintln(w, "All exported parameter references are valid.")
			return err
		}
		_, err := fmt.Fprintln(w, report.String())
		return err
	}
}

func exportText(groups []app.ExportedGroup) func(io.Writer) error {
	return func(w io.Writer) error {
		if len(groups) == 0 {
			_, err := fmt.Fprintln(w, "No exported parameters.")
			return err
		}
		t := newTable("KEY", "NAME", "TYPE", "TARGET", "VALUE")
		for _, g := range groups {
			for _, p := range g.Parameters {
				t.Row(p.Key, p.Name, p.Type, p.Target, formatValue(p.Value))
			}
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
}
