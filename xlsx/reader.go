// Package xlsx reads place names from Excel workbooks using tealeg/xlsx.
package xlsx

import (
	"context"

	"github.com/fwojciec/mapaddr"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Ensure PlaceReader implements mapaddr.PlaceReader at compile time.
var _ mapaddr.PlaceReader = (*PlaceReader)(nil)

// PlaceReader reads places from one sheet of an .xlsx workbook.
type PlaceReader struct {
	column string
	sheet  string
}

// Option configures a PlaceReader.
type Option func(*PlaceReader)

// WithColumn sets the header of the place name column.
// Defaults to mapaddr.DefaultColumn.
func WithColumn(column string) Option {
	return func(r *PlaceReader) {
		r.column = column
	}
}

// WithSheet selects a sheet by name. Defaults to the first sheet.
func WithSheet(name string) Option {
	return func(r *PlaceReader) {
		r.sheet = name
	}
}

// NewPlaceReader creates a new PlaceReader.
func NewPlaceReader(opts ...Option) *PlaceReader {
	r := &PlaceReader{column: mapaddr.DefaultColumn}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadPlaces reads the place name column of the selected sheet.
func (r *PlaceReader) ReadPlaces(ctx context.Context, path string) ([]mapaddr.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readRows(path, r.sheet)
	if err != nil {
		return nil, mapaddr.WrapError(mapaddr.EFILE, err, "reading %s", path)
	}

	return mapaddr.PlacesFromRows(rows, r.column)
}

func readRows(path, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", name)
		}
		return sheet, nil
	}

	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: workbook has no sheets")
	}
	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell == nil {
			continue
		}
		cells[j] = cell.String()
	}
	return cells
}
