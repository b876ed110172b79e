// Package roster defines the domain model shared by every stage of an
// enrollment run: source records, LMS reference accounts, course targets,
// provisioning commands and per-course summaries.
package roster
