package mapaddr_test

import (
	"testing"

	"github.com/fwojciec/mapaddr"
	"github.com/stretchr/testify/assert"
)

func TestNewPlace(t *testing.T) {
	t.Parallel()

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		p := mapaddr.NewPlace("  Cafe Luna  ")

		assert.Equal(t, "Cafe Luna", p.Name)
	})

	t.Run("keeps inner whitespace", func(t *testing.T) {
		t.Parallel()

		p := mapaddr.NewPlace("\tThe  Old Mill\n")

		assert.Equal(t, "The  Old Mill", p.Name)
	})

	t.Run("empty name stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mapaddr.NewPlace("   ").Name)
	})
}

func TestSearchURL(t *testing.T) {
	t.Parallel()

	t.Run("replaces spaces with plus", func(t *testing.T) {
		t.Parallel()

		got := mapaddr.SearchURL(mapaddr.DefaultSearchURL, mapaddr.NewPlace("  Cafe Luna  "))

		assert.Equal(t, "https://www.google.com/maps/search/Cafe+Luna", got)
	})

	t.Run("adds missing trailing slash to base", func(t *testing.T) {
		t.Parallel()

		got := mapaddr.SearchURL("http://127.0.0.1:8080/search", mapaddr.NewPlace("Blue Door"))

		assert.Equal(t, "http://127.0.0.1:8080/search/Blue+Door", got)
	})
}

func TestResultFor(t *testing.T) {
	t.Parallel()

	place := mapaddr.NewPlace(" Cafe Luna ")

	tests := []struct {
		name     string
		res      mapaddr.Resolution
		keepName bool
		want     mapaddr.Result
	}{
		{
			name: "resolved place uses page values verbatim",
			res:  mapaddr.Resolution{Name: "Café Luna ", Address: "1 Main St, Springfield"},
			want: mapaddr.Result{Name: "Café Luna ", Address: "1 Main St, Springfield"},
		},
		{
			name: "heading timeout falls back to input name",
			res:  mapaddr.Resolution{Failure: mapaddr.FailureHeadingTimeout},
			want: mapaddr.Result{Name: "Cafe Luna", Address: mapaddr.AddressNotFound},
		},
		{
			name: "missing heading falls back to input name",
			res:  mapaddr.Resolution{Failure: mapaddr.FailureHeadingMissing},
			want: mapaddr.Result{Name: "Cafe Luna", Address: mapaddr.AddressNotFound},
		},
		{
			name: "unreachable page falls back to input name",
			res:  mapaddr.Resolution{Failure: mapaddr.FailureNavigation},
			want: mapaddr.Result{Name: "Cafe Luna", Address: mapaddr.AddressNotFound},
		},
		{
			name: "missing address discards found heading by default",
			res:  mapaddr.Resolution{Name: "Café Luna", Failure: mapaddr.FailureAddressMissing},
			want: mapaddr.Result{Name: "Cafe Luna", Address: mapaddr.AddressNotFound},
		},
		{
			name:     "missing address keeps found heading when asked",
			res:      mapaddr.Resolution{Name: "Café Luna", Failure: mapaddr.FailureAddressMissing},
			keepName: true,
			want:     mapaddr.Result{Name: "Café Luna", Address: mapaddr.AddressNotFound},
		},
		{
			name:     "keepName does not apply to heading failures",
			res:      mapaddr.Resolution{Failure: mapaddr.FailureHeadingTimeout},
			keepName: true,
			want:     mapaddr.Result{Name: "Cafe Luna", Address: mapaddr.AddressNotFound},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mapaddr.ResultFor(place, tt.res, tt.keepName))
		})
	}
}

func TestFailure_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", mapaddr.FailureNone.String())
	assert.Equal(t, "heading timeout", mapaddr.FailureHeadingTimeout.String())
	assert.Equal(t, "heading not found", mapaddr.FailureHeadingMissing.String())
	assert.Equal(t, "address not found", mapaddr.FailureAddressMissing.String())
	assert.Equal(t, "page not loaded", mapaddr.FailureNavigation.String())
	assert.Equal(t, "unknown", mapaddr.Failure(42).String())
}

func TestResolution_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, mapaddr.Resolution{Name: "a", Address: "b"}.OK())
	assert.False(t, mapaddr.Resolution{Name: "a", Failure: mapaddr.FailureAddressMissing}.OK())
}
