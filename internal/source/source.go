// Package source supplies row data to grid instances.
//
// A Source is the dataset seam of the engine: it provides the initial rows
// and any later wholesale replacements. In-memory sources hand the engine
// the full dataset and let it filter and paginate locally. The SQLite
// source instead fetches one page at a time and reports the remote total,
// which the engine adopts as a totalCount override (server-driven
// pagination).
package source

import (
	"context"

	"mockview/internal/grid"
)

// Result is one fetch outcome. TotalCount is nil for full-dataset sources
// and set for page-at-a-time sources, where it reflects the remote row
// count rather than len(Rows).
type Result struct {
	Rows       []grid.Row
	TotalCount *int
}

// Source supplies rows for one grid instance.
type Source interface {
	// Fetch returns rows for a 0-based page. Full-dataset sources ignore
	// the paging arguments and return everything.
	Fetch(ctx context.Context, page, pageSize int) (Result, error)

	// Paged reports whether the source pages server-side. Paged sources
	// must be re-fetched on page-change intents.
	Paged() bool

	Close() error
}

// Static serves a fixed in-memory dataset, typically the inline rows of a
// mockup document.
type Static struct {
	rows []grid.Row
}

// NewStatic wraps already-normalized rows.
func NewStatic(rows []grid.Row) *Static {
	return &Static{rows: rows}
}

func (s *Static) Fetch(ctx context.Context, page, pageSize int) (Result, error) {
	return Result{Rows: s.rows}, nil
}

func (s *Static) Paged() bool { return false }

func (s *Static) Close() error { return nil }
