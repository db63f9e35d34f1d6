// Package aggregate rolls classified issues up into the views the report
// layer renders: type-by-severity breakdowns, per-page statistics, and
// recurring-text groupings.
//
// All views are built in a single pass and are pre-zeroed for every known
// type and severity, so downstream code can index them without nil checks.
package aggregate
