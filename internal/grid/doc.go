// Package grid implements the interactive data-grid engine behind the
// mockview table widget.
//
// ARCHITECTURE:
//
// Immutable snapshots:
// All grid state lives in a State value. Every mutator returns a new State;
// nothing is patched in place. The derived view (the rows actually shown) is
// recomputed wholesale from (original data, filters, sort, page, page size)
// whenever one of those inputs changes, so the view can never drift out of
// sync with its inputs.
//
// Transformation pipeline:
// original rows -> filter -> sort -> group -> paginate -> derived view.
// Filtering uses AND semantics across active filter fields. Sorting is
// stable and locale-aware. Grouping reorders rows into contiguous blocks in
// first-encountered group order, preserving intra-group sort order.
// Pagination slices the flattened, group-ordered sequence; a group may span
// page boundaries.
//
// Identity, not position:
// Selection and cell merging are keyed by row identity, so they survive
// filtering, sorting, and pagination. Group collapse and column widths are
// orthogonal to the row pipeline and never force a re-derivation.
//
// Single-writer discipline:
// The engine is synchronous and owns no locks. A host embedding it across
// goroutines must serialize all mutations externally; see internal/web for
// the canonical host.
//
// Malformed input never raises an error. Unknown sort columns leave the
// order unchanged, inert filter values pass every row, invalid merge spans
// degrade to span 1, out-of-range pages clamp, and non-finite resize widths
// are ignored. These are normalization policies, not failures.
package grid
