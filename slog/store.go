package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mapaddr"
)

// Ensure LoggingPlaceReader implements mapaddr.PlaceReader.
var _ mapaddr.PlaceReader = (*LoggingPlaceReader)(nil)

// LoggingPlaceReader wraps a PlaceReader with debug logging.
type LoggingPlaceReader struct {
	next   mapaddr.PlaceReader
	logger *slog.Logger
}

// NewLoggingPlaceReader creates a new LoggingPlaceReader.
func NewLoggingPlaceReader(next mapaddr.PlaceReader, logger *slog.Logger) *LoggingPlaceReader {
	return &LoggingPlaceReader{next: next, logger: logger}
}

// ReadPlaces delegates to the wrapped reader and logs the outcome.
func (r *LoggingPlaceReader) ReadPlaces(ctx context.Context, path string) (places []mapaddr.Place, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read places",
			"path", path,
			"count", len(places),
			"duration", time.Since(begin),
			"code", mapaddr.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPlaces(ctx, path)
}

// Ensure LoggingResultWriter implements mapaddr.ResultWriter.
var _ mapaddr.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with debug logging.
type LoggingResultWriter struct {
	next   mapaddr.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next mapaddr.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResults delegates to the wrapped writer and logs the outcome.
func (w *LoggingResultWriter) WriteResults(ctx context.Context, path string, results []mapaddr.Result) (checksum string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write results",
			"path", path,
			"rows", len(results),
			"checksum", checksum,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResults(ctx, path, results)
}
