// Package export flattens expanded combinations into a table with one
// column per load case and writes it as CSV or as an Excel workbook.
package export

import (
	"strconv"

	"github.com/alexiusacademia/gocombo/internal/combo"
	"github.com/alexiusacademia/gocombo/internal/loadgroup"
)

// Options controls how the table is filled
type Options struct {
	// Blank leaves load cases missing from a row empty instead of writing 0
	Blank bool
}

// Table is the flat form of the combination rows
type Table struct {
	Cases []loadgroup.LoadCase
	Rows  []combo.Row
	Blank bool
}

// NewTable builds the table columns from every load case used by the rows,
// in the order the model lists its leaves.
func NewTable(model *loadgroup.Model, rows []combo.Row, opts Options) *Table {
	used := make(combo.Combination)
	for _, row := range rows {
		for lc, f := range row.Factors {
			used[lc] = f
		}
	}
	return &Table{
		Cases: used.Cases(model.LoadCases()),
		Rows:  rows,
		Blank: opts.Blank,
	}
}

// Header returns the column titles
func (t *Table) Header() []string {
	h := make([]string, 0, len(t.Cases)+2)
	h = append(h, "Recipe", "Combination")
	for _, lc := range t.Cases {
		h = append(h, string(lc))
	}
	return h
}

// Value returns the factor of load case column j in row i
func (t *Table) Value(i, j int) (float64, bool) {
	f, ok := t.Rows[i].Factors[t.Cases[j]]
	return f, ok
}

// Records returns the header followed by one formatted record per row
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header())
	for i, row := range t.Rows {
		rec := make([]string, 0, len(t.Cases)+2)
		rec = append(rec, row.Recipe, row.Name)
		for j := range t.Cases {
			f, ok := t.Value(i, j)
			switch {
			case ok:
				rec = append(rec, FormatFactor(f))
			case t.Blank:
				rec = append(rec, "")
			default:
				rec = append(rec, "0")
			}
		}
		out = append(out, rec)
	}
	return out
}

// FormatFactor prints a factor with the fewest digits that read back exactly
func FormatFactor(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
