package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeColumns() []Column {
	return []Column{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
	}
}

// TestResolveCells_HiddenCellsOmitted verifies hidden cells are dropped
// from the sequence, not rendered empty.
func TestResolveCells_HiddenCellsOmitted(t *testing.T) {
	row := Row{
		ID:    "1",
		Cells: map[string]any{"a": "x", "b": "y", "c": "z"},
		Merges: map[string]Merge{
			"a": {Colspan: 2},
			"b": {Hidden: true},
		},
	}

	cells := ResolveCells(row, mergeColumns())
	require.Len(t, cells, 2)
	assert.Equal(t, "a", cells[0].Column.ID)
	assert.Equal(t, 2, cells[0].Colspan)
	assert.Equal(t, "c", cells[1].Column.ID)
}

// TestResolveCells_InvalidSpansDegradeToOne verifies zero and negative
// spans normalize to span 1.
func TestResolveCells_InvalidSpansDegradeToOne(t *testing.T) {
	row := Row{
		ID:    "1",
		Cells: map[string]any{"a": "x"},
		Merges: map[string]Merge{
			"a": {Colspan: -3, Rowspan: 0},
		},
	}

	cells := ResolveCells(row, mergeColumns())
	require.Len(t, cells, 3)
	assert.Equal(t, 1, cells[0].Colspan)
	assert.Equal(t, 1, cells[0].Rowspan)
}

// TestResolveCells_NoDirectives verifies rows without merges produce one
// span-1 cell per column, reading through the column's field key.
func TestResolveCells_NoDirectives(t *testing.T) {
	cols := []Column{{ID: "a", Field: "alpha"}}
	row := Row{ID: "1", Cells: map[string]any{"alpha": 42}}

	cells := ResolveCells(row, cols)
	require.Len(t, cells, 1)
	assert.Equal(t, 42, cells[0].Value)
	assert.Equal(t, 1, cells[0].Colspan)
	assert.Equal(t, 1, cells[0].Rowspan)
}

// TestResolveCells_MalformedTilingDoesNotCrash verifies the resolver never
// validates cross-row consistency; a nonsense tiling still resolves.
func TestResolveCells_MalformedTilingDoesNotCrash(t *testing.T) {
	row := Row{
		ID: "1",
		Merges: map[string]Merge{
			"a": {Hidden: true},
			"b": {Hidden: true},
			"c": {Hidden: true},
		},
	}

	assert.Empty(t, ResolveCells(row, mergeColumns()))
}
