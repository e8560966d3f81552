package mapaddr

// Extractor reads a place from a rendered results page.
type Extractor interface {
	// Extract locates the heading and address in html. It never fails;
	// a page it cannot read is reported through Resolution.Failure.
	Extract(html string) Resolution
}
