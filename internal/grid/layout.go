package grid

import "math"

// resizeDrag holds the in-flight drag of one column resize. The preview
// width is transient and uncommitted: pointer moves update it without
// touching columnWidths or re-deriving the view, so a full-tree render is
// never forced per pointer event.
type resizeDrag struct {
	columnID   string
	startX     float64
	startWidth int
	preview    int
}

// Resizing reports whether a resize drag is in flight, and for which
// column.
func (s State) Resizing() (columnID string, ok bool) {
	if s.resize == nil {
		return "", false
	}
	return s.resize.columnID, true
}

// ColumnWidth returns the committed width for a column, falling back to the
// declared width and then the minimum bound. During a drag, the resized
// column reports its transient preview width instead.
func (s State) ColumnWidth(id string) int {
	if s.resize != nil && s.resize.columnID == id {
		return s.resize.preview
	}
	if w, ok := s.widths[id]; ok {
		return w
	}
	for _, col := range s.cfg.Columns {
		if col.ID == id && col.Width > 0 {
			return clampWidth(col.Width, s.cfg)
		}
	}
	return s.cfg.MinColWidth
}

// WithResizeStart enters the Resizing state for a column. Starting a drag
// on an unknown or non-resizable column, or while another drag is in
// flight, is a no-op.
func (s State) WithResizeStart(columnID string, pointerX float64) State {
	if s.resize != nil {
		return s
	}
	for _, col := range s.cfg.Columns {
		if col.ID != columnID {
			continue
		}
		if !col.Resizable {
			return s
		}
		w := s.ColumnWidth(columnID)
		s.resize = &resizeDrag{
			columnID:   columnID,
			startX:     pointerX,
			startWidth: w,
			preview:    w,
		}
		return s
	}
	return s
}

// WithResizeMove updates the transient preview width from the pointer
// delta, clamped into bounds. No-op outside a drag.
func (s State) WithResizeMove(pointerX float64) State {
	if s.resize == nil {
		return s
	}
	d := *s.resize
	d.preview = clampWidth(d.startWidth+int(pointerX-d.startX), s.cfg)
	s.resize = &d
	return s
}

// WithResizeEnd commits the preview width into columnWidths and returns to
// Idle. No-op outside a drag.
func (s State) WithResizeEnd() State {
	if s.resize == nil {
		return s
	}
	next := make(map[string]int, len(s.widths)+1)
	for k, v := range s.widths {
		next[k] = v
	}
	next[s.resize.columnID] = s.resize.preview
	s.widths = next
	s.resize = nil
	return s
}

// WithResizeCancel discards the preview and returns to Idle without
// committing. This is the escape hatch for drags whose release event never
// arrives (pointer left the tracked surface).
func (s State) WithResizeCancel() State {
	s.resize = nil
	return s
}

// WithColumnWidth is the discrete counterpart to drag resizing, used for
// programmatic resizes. Non-finite or negative widths are ignored; valid
// widths are clamped into bounds and committed immediately.
func (s State) WithColumnWidth(id string, width float64) State {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return s
	}
	known := false
	for _, col := range s.cfg.Columns {
		if col.ID == id {
			known = true
			break
		}
	}
	if !known {
		return s
	}
	next := make(map[string]int, len(s.widths)+1)
	for k, v := range s.widths {
		next[k] = v
	}
	next[id] = clampWidth(int(width), s.cfg)
	s.widths = next
	return s
}

// ColumnWidths returns a copy of the committed width map.
func (s State) ColumnWidths() map[string]int {
	out := make(map[string]int, len(s.widths))
	for k, v := range s.widths {
		out[k] = v
	}
	return out
}

func clampWidth(w int, cfg Config) int {
	if w < cfg.MinColWidth {
		return cfg.MinColWidth
	}
	if w > cfg.MaxColWidth {
		return cfg.MaxColWidth
	}
	return w
}
