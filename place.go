package mapaddr

import "strings"

// AddressNotFound is the address recorded when a place could not be resolved.
const AddressNotFound = "Address not found"

// DefaultSearchURL is the Google Maps search endpoint. The query is appended
// to it as a single path segment.
const DefaultSearchURL = "https://www.google.com/maps/search/"

// Place is a single input record.
type Place struct {
	Name string
}

// NewPlace returns a Place with surrounding whitespace trimmed from name.
func NewPlace(name string) Place {
	return Place{Name: strings.TrimSpace(name)}
}

// Query returns the search query for the place with spaces replaced by '+'.
func (p Place) Query() string {
	return strings.ReplaceAll(p.Name, " ", "+")
}

// SearchURL returns the URL that searches baseURL for the place.
func SearchURL(baseURL string, p Place) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + p.Query()
}

// Result is a single output record. It corresponds positionally to the
// Place it was produced from.
type Result struct {
	Name    string
	Address string
}

// Failure describes why a place could not be resolved.
type Failure int

// Failure values reported by extraction.
const (
	FailureNone Failure = iota
	FailureHeadingTimeout
	FailureHeadingMissing
	FailureAddressMissing
	FailureNavigation
)

// String returns a short description used in logs and progress output.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureHeadingTimeout:
		return "heading timeout"
	case FailureHeadingMissing:
		return "heading not found"
	case FailureAddressMissing:
		return "address not found"
	case FailureNavigation:
		return "page not loaded"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of extracting a place from a rendered page.
// Name is set whenever the heading was found, even if Failure is
// FailureAddressMissing.
type Resolution struct {
	Name    string
	Address string
	Failure Failure
}

// OK reports whether both the name and the address were found.
func (r Resolution) OK() bool {
	return r.Failure == FailureNone
}

// ResultFor converts a resolution into the output record for p.
// Unresolved places fall back to the input name and AddressNotFound.
// When keepName is set, a heading found without an address keeps the
// page-derived name.
func ResultFor(p Place, r Resolution, keepName bool) Result {
	switch {
	case r.OK():
		return Result{Name: r.Name, Address: r.Address}
	case keepName && r.Failure == FailureAddressMissing && r.Name != "":
		return Result{Name: r.Name, Address: AddressNotFound}
	default:
		return Result{Name: p.Name, Address: AddressNotFound}
	}
}

// Layout holds the CSS selectors used to read a place from a results page.
type Layout struct {
	// Heading matches the element holding the resolved place name.
	Heading string

	// Address matches the text-bearing element of the address entry.
	Address string
}

// DefaultLayout matches the Google Maps place panel.
var DefaultLayout = Layout{
	Heading: `h1.DUwDvf.lfPIob`,
	Address: `button[data-item-id*="address"] div.Io6YTe.fontBodyMedium.kR99db`,
}
