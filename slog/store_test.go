package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/mapaddr"
	"github.com/fwojciec/mapaddr/mock"
	mapslog "github.com/fwojciec/mapaddr/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPlaceReader_ReadPlaces(t *testing.T) {
	t.Parallel()

	t.Run("logs path and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PlaceReader{
			ReadPlacesFn: func(ctx context.Context, path string) ([]mapaddr.Place, error) {
				return []mapaddr.Place{{Name: "a"}, {Name: "b"}}, nil
			},
		}

		reader := mapslog.NewLoggingPlaceReader(inner, logger)
		places, err := reader.ReadPlaces(context.Background(), "places.xlsx")

		require.NoError(t, err)
		assert.Len(t, places, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=\"read places\"")
		assert.Contains(t, output, "path=places.xlsx")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs schema error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PlaceReader{
			ReadPlacesFn: func(ctx context.Context, path string) ([]mapaddr.Place, error) {
				return nil, mapaddr.Errorf(mapaddr.ESCHEMA, "column %q not found", "Place Name")
			},
		}

		reader := mapslog.NewLoggingPlaceReader(inner, logger)
		_, err := reader.ReadPlaces(context.Background(), "places.xlsx")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=schema")
	})
}

func TestLoggingResultWriter_WriteResults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ResultWriter{
		WriteResultsFn: func(ctx context.Context, path string, results []mapaddr.Result) (string, error) {
			return "00000000deadbeef", nil
		},
	}

	writer := mapslog.NewLoggingResultWriter(inner, logger)
	sum, err := writer.WriteResults(context.Background(), "out.csv", []mapaddr.Result{{Name: "a", Address: "b"}})

	require.NoError(t, err)
	assert.Equal(t, "00000000deadbeef", sum)
	output := buf.String()
	assert.Contains(t, output, "msg=\"write results\"")
	assert.Contains(t, output, "rows=1")
	assert.Contains(t, output, "checksum=00000000deadbeef")
}
