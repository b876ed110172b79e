// Package normalize cleans raw source rows into roster records.
//
// Every helper is total: a value that cannot be interpreted becomes the
// documented "missing" form instead of an error, so a single malformed cell
// never aborts a batch. Only rows that cannot be placed in any course
// (no period or section key) are rejected, and those are reported through
// Normalizer.Issues rather than dropped silently.
package normalize
