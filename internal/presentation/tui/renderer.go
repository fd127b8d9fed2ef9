// Package tui holds the terminal presentation of the CLI: markdown rendering
// for pretty reports and coloured status lines.
package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns text into what is shown on a terminal.
type Renderer func(string) (string, error)

// NewRenderer returns a Renderer that formats markdown with glamour.
func NewRenderer() (Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}

// PlainRenderer returns text unchanged.
func PlainRenderer(text string) (string, error) {
	return text, nil
}

// ReportMarkdown wraps a report in a fenced block under a heading, so glamour
// keeps its indentation.
func ReportMarkdown(title, report string) string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n```yaml\n")
	sb.WriteString(strings.TrimRight(report, "\n"))
	sb.WriteString("\n```\n")
	return sb.String()
}
