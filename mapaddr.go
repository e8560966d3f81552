// Package mapaddr provides a CLI batch tool that resolves place names to
// postal addresses. It reads place names from a spreadsheet, searches each
// one on a mapping web service through a real browser, extracts the
// resolved name and address from the rendered page, and writes the results
// to a CSV file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, xlsx/).
package mapaddr
