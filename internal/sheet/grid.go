// Package sheet parses transposed directory spreadsheets into business records.
//
// The sheets are column-major: row 0 of each column after the first holds no
// special meaning; instead column 0 carries the field labels and every
// further column is one business.
package sheet

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// GridFromCSV reads an entire CSV document as a ragged string grid.
// Rows may have differing lengths; the extractor tolerates missing cells.
func GridFromCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	var grid [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "sheet: read csv row")
		}
		grid = append(grid, record)
	}
	return grid, nil
}

// GridFromXLSX reads the first sheet of an XLSX workbook as a string grid.
func GridFromXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: open xlsx")
	}
	return gridFromWorkbook(f)
}

// GridFromXLSXBytes reads the first sheet of an in-memory XLSX workbook,
// as downloaded from Drive.
func GridFromXLSXBytes(data []byte) ([][]string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "sheet: open xlsx bytes")
	}
	return gridFromWorkbook(f)
}

func gridFromWorkbook(f *xlsx.File) ([][]string, error) {
	if len(f.Sheets) == 0 {
		return nil, eris.New("sheet: xlsx has no sheets")
	}

	var grid [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// GridFromFile loads a grid from a local CSV or XLSX file by extension.
func GridFromFile(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := openFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck
		return GridFromCSV(f)
	case ".xlsx", ".xls":
		return GridFromXLSX(path)
	default:
		return nil, eris.Errorf("sheet: unsupported file type %q", filepath.Ext(path))
	}
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sheet: open %s", path)
	}
	return f, nil
}
