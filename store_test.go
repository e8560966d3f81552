package mapaddr_test

import (
	"testing"

	"github.com/fwojciec/mapaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesFromRows(t *testing.T) {
	t.Parallel()

	t.Run("reads the named column in order", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{
			{"ID", "Place Name", "Notes"},
			{"1", "  Cafe Luna  ", "corner"},
			{"2", "Blue Door", ""},
			{"3", "Cafe Luna", "duplicate"},
		}

		places, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		require.NoError(t, err)
		assert.Equal(t, []mapaddr.Place{
			{Name: "Cafe Luna"},
			{Name: "Blue Door"},
			{Name: "Cafe Luna"},
		}, places)
	})

	t.Run("fails with schema error when column is missing", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{{"Name", "City"}, {"Cafe Luna", "Rome"}}

		_, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		require.Error(t, err)
		assert.Equal(t, mapaddr.ESCHEMA, mapaddr.ErrorCode(err))
		assert.Contains(t, mapaddr.ErrorMessage(err), `"Place Name"`)
	})

	t.Run("requires exact header match", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{{"place name"}, {"Cafe Luna"}}

		_, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		assert.Equal(t, mapaddr.ESCHEMA, mapaddr.ErrorCode(err))
	})

	t.Run("fails with schema error on empty input", func(t *testing.T) {
		t.Parallel()

		_, err := mapaddr.PlacesFromRows(nil, mapaddr.DefaultColumn)

		assert.Equal(t, mapaddr.ESCHEMA, mapaddr.ErrorCode(err))
	})

	t.Run("header only yields no places", func(t *testing.T) {
		t.Parallel()

		places, err := mapaddr.PlacesFromRows([][]string{{"Place Name"}}, mapaddr.DefaultColumn)

		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("skips empty rows and keeps empty names", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{
			{"Place Name", "City"},
			{"", ""},
			{"   ", "Rome"},
			{"  ", " "},
			{"Blue Door"},
			{},
		}

		places, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		require.NoError(t, err)
		assert.Equal(t, []mapaddr.Place{{Name: ""}, {Name: ""}, {Name: "Blue Door"}}, places)
	})

	t.Run("whitespace-only name in single column is kept", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{{"Place Name"}, {"   "}, {"Cafe Luna"}}

		places, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		require.NoError(t, err)
		assert.Equal(t, []mapaddr.Place{{Name: ""}, {Name: "Cafe Luna"}}, places)
	})

	t.Run("short rows yield empty names", func(t *testing.T) {
		t.Parallel()

		rows := [][]string{{"City", "Place Name"}, {"Rome"}}

		places, err := mapaddr.PlacesFromRows(rows, mapaddr.DefaultColumn)

		require.NoError(t, err)
		assert.Equal(t, []mapaddr.Place{{Name: ""}}, places)
	})
}
