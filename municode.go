// Package municode provides a client toolkit for fetching municipal-code
// documents from the Municode content API, normalizing their embedded HTML
// into plain text, and organizing the results into a deduplicated set of
// chapters for storage and indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, fs/).
package municode
