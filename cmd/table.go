package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// tableFormat selects how tables are rendered.
type tableFormat string

const (
	formatText     tableFormat = "text"
	formatMarkdown tableFormat = "markdown"
)

func parseTableFormat(s string) (tableFormat, error) {
	switch tableFormat(s) {
	case formatText, formatMarkdown:
		return tableFormat(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want text or markdown)", s)
}

func newTable() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return w
}

func renderTable(w table.Writer, f tableFormat) string {
	if f == formatMarkdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
