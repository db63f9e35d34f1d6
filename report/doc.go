// Package report renders analysis results in several formats: a full text
// report with per-type detail and remediation guidance, a short summary, a
// statistics-only view, a machine-readable JSON document, and a standalone
// HTML page.
package report
