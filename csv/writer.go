// Package csv reads places from and writes results to CSV files.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mapaddr"
)

// Ensure ResultWriter implements mapaddr.ResultWriter at compile time.
var _ mapaddr.ResultWriter = (*ResultWriter)(nil)

// ResultWriter writes results as a two-column UTF-8 CSV file with CRLF line
// endings. The destination is overwritten in a single write.
type ResultWriter struct{}

// NewResultWriter creates a new ResultWriter.
func NewResultWriter() *ResultWriter {
	return &ResultWriter{}
}

// WriteResults writes the header and one row per result to path and returns
// the xxhash64 of the written bytes.
func (w *ResultWriter) WriteResults(ctx context.Context, path string, results []mapaddr.Result) (string, error) {
	data, err := Encode(results)
	if err != nil {
		return "", mapaddr.WrapError(mapaddr.EFILE, err, "encoding results")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", mapaddr.WrapError(mapaddr.EFILE, err, "writing %s", path)
	}

	return Checksum(data), nil
}

// Encode renders results as CSV with the mapaddr.OutputHeader row.
func Encode(results []mapaddr.Result) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.UseCRLF = true

	if err := cw.Write(mapaddr.OutputHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Name, r.Address}); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Checksum returns the hex xxhash64 of data.
func Checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
