package grid

// WithRowSelected applies a row selection by identity.
//
//   - single mode: the selection becomes exactly {id}
//   - multiple mode: id toggles in and out of the selection
//   - none mode: no-op
func (s State) WithRowSelected(id string) State {
	switch s.cfg.Selection {
	case SelectionSingle:
		s.selected = map[string]struct{}{id: {}}
	case SelectionMultiple:
		next := copySet(s.selected)
		if _, ok := next[id]; ok {
			delete(next, id)
		} else {
			next[id] = struct{}{}
		}
		s.selected = next
	}
	return s
}

// WithAllSelected selects or deselects the rows of the current derived
// page. The scope is deliberately the rendered page, not the full filtered
// set: navigating pages never selects or deselects rows outside the page
// the intent acted on. No-op outside multiple mode.
func (s State) WithAllSelected(flag bool) State {
	if s.cfg.Selection != SelectionMultiple {
		return s
	}
	next := copySet(s.selected)
	for _, row := range s.derived {
		if flag {
			next[row.ID] = struct{}{}
		} else {
			delete(next, row.ID)
		}
	}
	s.selected = next
	return s
}

// IsSelected reports whether a row identity is selected.
func (s State) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectionCount returns the number of selected identities.
func (s State) SelectionCount() int { return len(s.selected) }

// SelectedIDs returns the selected identities in original-data order.
func (s State) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, row := range s.original {
		if _, ok := s.selected[row.ID]; ok {
			ids = append(ids, row.ID)
		}
	}
	return ids
}

// SelectedRows resolves the selection against the authoritative dataset.
// Because selection is keyed by identity rather than position, it survives
// filtering, sorting, and pagination.
func (s State) SelectedRows() []Row {
	rows := make([]Row, 0, len(s.selected))
	for _, row := range s.original {
		if _, ok := s.selected[row.ID]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}
