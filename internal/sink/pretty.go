package sink

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	"github.com/AmmannChristian/keybits/internal/sweep"
)

// Render writes t to w as an aligned text table.
func Render(w io.Writer, t *sweep.Table) error {
	if t == nil {
		return fmt.Errorf("attempt to render nil table")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	// Don't uppercase the header values.
	tw.Style().Format.Header = text.FormatDefault

	tw.AppendHeader(toRow(t.Columns()))
	for _, fields := range t.Rows() {
		tw.AppendRow(toRow(fields))
	}
	tw.Render()

	return nil
}

func toRow(fields []string) table.Row {
	row := make(table.Row, len(fields))
	for i, f := range fields {
		row[i] = f
	}
	return row
}
