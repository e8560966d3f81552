package mock

import (
	"context"

	"github.com/fwojciec/mapaddr"
)

// Compile-time interface verification.
var (
	_ mapaddr.PlaceReader  = (*PlaceReader)(nil)
	_ mapaddr.ResultWriter = (*ResultWriter)(nil)
)

// PlaceReader is a mock implementation of mapaddr.PlaceReader.
type PlaceReader struct {
	ReadPlacesFn func(ctx context.Context, path string) ([]mapaddr.Place, error)
}

func (r *PlaceReader) ReadPlaces(ctx context.Context, path string) ([]mapaddr.Place, error) {
	return r.ReadPlacesFn(ctx, path)
}

// ResultWriter is a mock implementation of mapaddr.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(ctx context.Context, path string, results []mapaddr.Result) (string, error)
}

func (w *ResultWriter) WriteResults(ctx context.Context, path string, results []mapaddr.Result) (string, error) {
	return w.WriteResultsFn(ctx, path, results)
}
