package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/mapaddr"
)

// Ensure PlaceReader implements mapaddr.PlaceReader at compile time.
var _ mapaddr.PlaceReader = (*PlaceReader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PlaceReader reads places from a CSV file with a header row.
type PlaceReader struct {
	column string
}

// NewPlaceReader creates a new PlaceReader for the given column header.
// An empty column means mapaddr.DefaultColumn.
func NewPlaceReader(column string) *PlaceReader {
	if column == "" {
		column = mapaddr.DefaultColumn
	}
	return &PlaceReader{column: column}
}

// ReadPlaces reads the place name column. A leading UTF-8 byte order mark,
// as written by spreadsheet exports, is ignored.
func (r *PlaceReader) ReadPlaces(ctx context.Context, path string) ([]mapaddr.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapaddr.WrapError(mapaddr.EFILE, err, "reading %s", path)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, mapaddr.WrapError(mapaddr.EFILE, err, "parsing %s", path)
	}

	return mapaddr.PlacesFromRows(rows, r.column)
}
