package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/topfive/internal/config"
	"github.com/rshade/topfive/internal/engine"
)

// tableRuleWidth is the width of the dashed rules around the table body.
const tableRuleWidth = 29

// TableReporter prints the fixed-width ID/Name/Age table.
type TableReporter struct {
	// Styled renders the header bold. Set it only when writing to a terminal.
	Styled bool
}

// Render writes the table for report to w.
func (r TableReporter) Render(w io.Writer, report engine.Report) error {
	rule := strings.Repeat("-", tableRuleWidth)
	header := fmt.Sprintf("%-10s%-15s%s", "ID", "Name", "Age")
	if r.Styled {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
	for _, u := range report.Users {
		fmt.Fprintf(&b, "%-10d%-15s%d\n", u.ID, u.Name, u.Age)
	}
	b.WriteString(rule)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonReport is the JSON output document.
type jsonReport struct {
	Users   []engine.User `json:"users"`
	Count   int           `json:"count"`
	Pages   int           `json:"pages"`
	Partial bool          `json:"partial"`
}

// JSONReporter prints the report as an indented JSON document.
type JSONReporter struct{}

// Render writes the JSON document for report to w.
func (JSONReporter) Render(w io.Writer, report engine.Report) error {
	users := report.Users
	if users == nil {
		users = []engine.User{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{
		Users:   users,
		Count:   len(users),
		Pages:   report.Pages,
		Partial: report.Partial(),
	})
}

// NewReporter returns the reporter for format. styled only affects the table.
func NewReporter(format string, styled bool) (engine.Reporter, error) {
	switch strings.ToLower(format) {
	case config.FormatTable, "":
		return TableReporter{Styled: styled}, nil
	case config.FormatJSON:
		return JSONReporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use %q or %q)",
			format, config.FormatTable, config.FormatJSON)
	}
}
