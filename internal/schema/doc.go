// Package schema defines the mockup document model and its loader.
//
// A mockup is a YAML file describing a titled page of widgets. Most widget
// kinds are thin presentational glue (badge, chip, heading, status, note);
// the table kind carries the full data-grid configuration consumed by
// internal/grid.
//
// Loading is two-phase:
//  1. the raw YAML is checked against an embedded CUE schema, which
//     produces positioned, coded errors for malformed documents
//  2. the YAML decodes into the typed document model, and the table
//     definitions normalize into grid.Config plus grid.Row values
//
// Validation catches structural mistakes (unknown widget kinds, bad filter
// kinds, non-positive page sizes). Value-level oddities inside row data are
// deliberately not rejected here; the grid engine normalizes those at use
// time.
package schema
