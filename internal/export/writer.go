package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is an output file format
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// SheetName is the worksheet holding the combinations in xlsx output
const SheetName = "Combinations"

// ParseFormat resolves a format name, falling back to the file extension of
// path and then to CSV.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if name != string(XLSX) {
			name = string(CSV)
		}
	}
	switch f := Format(strings.ToLower(name)); f {
	case CSV, XLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use csv or xlsx)", name)
	}
}

// WriteCSV writes the table as comma separated values
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the table as an Excel workbook with numeric factor cells
func WriteXLSX(w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(t.Cases)+2)
	for _, h := range t.Header() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		values := make([]interface{}, 0, len(t.Cases)+2)
		values = append(values, row.Recipe, row.Name)
		for j := range t.Cases {
			v, ok := t.Value(i, j)
			switch {
			case ok:
				values = append(values, v)
			case t.Blank:
				values = append(values, nil)
			default:
				values = append(values, 0.0)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

// Write writes the table to path in the given format; an empty path or "-"
// writes to stdout.
func Write(path string, format Format, t *Table) error {
	if path == "" || path == "-" {
		return WriteTo(os.Stdout, format, t)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(file, format, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteTo writes the table to w in the given format
func WriteTo(w io.Writer, format Format, t *Table) error {
	switch format {
	case XLSX:
		return WriteXLSX(w, t)
	default:
		return WriteCSV(w, t)
	}
}
