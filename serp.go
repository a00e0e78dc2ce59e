// Package serp provides a command-line Google search client.
// It fetches result pages over HTTPS, extracts organic results with a
// single-pass streaming parser, and presents them in a paginated terminal
// session.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, trafilatura/).
package serp
