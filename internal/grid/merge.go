package grid

// Merge is a per-cell merge directive. Hidden marks a logical cell that is
// covered by a span anchored elsewhere; hidden cells are omitted from the
// rendered cell sequence, not rendered empty.
type Merge struct {
	Hidden  bool
	Colspan int
	Rowspan int
}

// Cell is one renderable cell of a row after merge resolution.
type Cell struct {
	Column  Column
	Value   any
	Colspan int
	Rowspan int
}

// normalizeSpan accepts only positive span values; anything else degrades
// to span 1.
func normalizeSpan(n int) int {
	if n >= 1 {
		return n
	}
	return 1
}

// ResolveCells produces the rendered cell sequence for one row: a pure
// per-cell lookup that omits hidden cells and normalizes spans. It does not
// verify that directives tile consistently across rows or columns; a
// malformed tiling renders wrong but never crashes.
func ResolveCells(row Row, columns []Column) []Cell {
	cells := make([]Cell, 0, len(columns))
	for _, col := range columns {
		m := row.Merges[col.ID]
		if m.Hidden {
			continue
		}
		cells = append(cells, Cell{
			Column:  col,
			Value:   row.Value(col.FieldKey()),
			Colspan: normalizeSpan(m.Colspan),
			Rowspan: normalizeSpan(m.Rowspan),
		})
	}
	return cells
}
