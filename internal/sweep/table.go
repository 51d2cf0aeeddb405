package sweep

import (
	"strconv"

	"github.com/AmmannChristian/keybits/internal/estimate"
)

// Column names of the comparison table, in output order.
const (
	ColumnMethod     = "method"
	ColumnNumKeys    = "num_keys"
	ColumnBitsPerKey = "bits_per_key"
)

// Record is one estimator result for one key count.
type Record struct {
	Method     estimate.Method
	NumKeys    int64
	BitsPerKey float64
}

// Fields formats the record in column order. Bits per key use the shortest
// decimal that round-trips, without an exponent.
func (r Record) Fields() []string {
	return []string{
		r.Method.String(),
		strconv.FormatInt(r.NumKeys, 10),
		strconv.FormatFloat(r.BitsPerKey, 'f', -1, 64),
	}
}

// Table is the ordered result of a sweep.
type Table struct {
	records []Record
}

// NewTable returns a table holding records in the given order.
func NewTable(records []Record) *Table {
	return &Table{records: append([]Record(nil), records...)}
}

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	return []string{ColumnMethod, ColumnNumKeys, ColumnBitsPerKey}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the records in sweep order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Rows returns every record formatted with Record.Fields.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, r := range t.records {
		rows[i] = r.Fields()
	}
	return rows
}

// Lookup returns the record for method m at n keys.
func (t *Table) Lookup(m estimate.Method, n int64) (Record, bool) {
	for _, r := range t.records {
		if r.Method == m && r.NumKeys == n {
			return r, true
		}
	}
	return Record{}, false
}
