// Package sink hands a finished comparison table to its consumers: a CSV
// file on disk and, optionally, a rendered table on a terminal.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AmmannChristian/keybits/internal/sweep"
)

// WriteCSV writes the header row followed by every record of table.
func WriteCSV(w io.Writer, table *sweep.Table) error {
	if table == nil {
		return fmt.Errorf("attempt to write nil table")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(table.Rows()); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

// WriteFile writes table as CSV to path. The file is written to a temporary
// sibling first and renamed into place, so path never holds a partial table.
func WriteFile(path string, table *sweep.Table) (err error) {
	if table == nil {
		return fmt.Errorf("attempt to write nil table")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, table); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting output file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}
	return nil
}
