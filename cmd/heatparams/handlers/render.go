package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sigs.k8s.io/yaml"
)

// Output formats.
const (
	FormatAuto  = "auto"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorGreen = lipgloss.Color("#22c55e")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// row is one key/value line of a table.
type row struct {
	Key   string
	Value string
}

// resolveFormat maps FormatAuto to a table on terminals and JSON otherwise.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case "", FormatAuto:
		if isTerminal(w) {
			return FormatTable, nil
		}
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatTable:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// render writes v in format. rows are used for the table format.
func render(w io.Writer, format, title string, v any, rows []row) error {
	format, err := resolveFormat(format, w)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := io.WriteString(w, renderTable(title, rows))
		return err
	}
}

// renderTable produces a lipgloss-styled key/value listing.
func renderTable(title string, rows []row) string {
	var b strings.Builder

	width := 0
	for _, r := range rows {
		width = max(width, len(r.Key))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", max(len(title), 30))))
	b.WriteString("\n")

	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(r.Key + strings.Repeat(" ", width-len(r.Key))))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(r.Value))
		b.WriteString("\n")
	}

	return b.String()
}
