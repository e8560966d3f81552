package mapaddr

import (
	"context"
	"slices"
)

// DefaultColumn is the header of the input column holding place names.
const DefaultColumn = "Place Name"

// OutputHeader is the header row of the results file.
var OutputHeader = []string{"Place Name", "Address"}

// PlaceReader loads input records from a tabular file.
type PlaceReader interface {
	// ReadPlaces returns the trimmed place names in file order.
	// Returns EFILE if the file cannot be read and ESCHEMA if the place
	// name column is missing.
	ReadPlaces(ctx context.Context, path string) ([]Place, error)
}

// ResultWriter persists a result set.
type ResultWriter interface {
	// WriteResults overwrites path with results in order and returns a
	// checksum of the bytes written.
	WriteResults(ctx context.Context, path string, results []Result) (checksum string, err error)
}

// PlacesFromRows converts tabular rows into places. The first row is the
// header and must contain column exactly. Rows whose cells are all empty
// strings are skipped. Whitespace-only cells and rows shorter than the
// column yield an empty name.
func PlacesFromRows(rows [][]string, column string) ([]Place, error) {
	if len(rows) == 0 {
		return nil, Errorf(ESCHEMA, "no header row: column %q not found", column)
	}

	idx := slices.Index(rows[0], column)
	if idx < 0 {
		return nil, Errorf(ESCHEMA, "column %q not found", column)
	}

	places := make([]Place, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		var name string
		if idx < len(row) {
			name = row[idx]
		}
		places = append(places, NewPlace(name))
	}
	return places, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
