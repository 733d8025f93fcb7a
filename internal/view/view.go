// Package view projects engine state into render-ready models and HTML.
//
// Projection is pure: a snapshot goes in, a view model comes out, and the
// same snapshot always yields the same model. The HTML rendering on top is
// plain html/template with no behavior of its own; every interactive
// element carries data attributes naming the intent it maps to, and the
// host (internal/web) translates those into controller dispatches.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mockview/internal/grid"
	"mockview/internal/schema"
)

// Page is the full render model for one mockup document.
type Page struct {
	Title   string       `json:"title"`
	Widgets []WidgetView `json:"widgets"`
}

// WidgetView is the render model of one widget. Table is set only for the
// table kind.
type WidgetView struct {
	Kind  string     `json:"kind"`
	Label string     `json:"label,omitempty"`
	Value string     `json:"value,omitempty"`
	Color string     `json:"color,omitempty"`
	Table *TableView `json:"table,omitempty"`
}

// TableView is the render model of one grid snapshot.
type TableView struct {
	ID             string           `json:"id"`
	Columns        []ColumnView     `json:"columns"`
	Sections       []SectionView    `json:"sections"`
	Pager          PagerView        `json:"pager"`
	SelectionCount int              `json:"selection_count"`
	Loading        bool             `json:"loading,omitempty"`
	Actions        []grid.RowAction `json:"-"`
}

// ColumnView carries one header cell.
type ColumnView struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Width     int    `json:"width"`
	Align     string `json:"align,omitempty"`
	Fixed     string `json:"fixed,omitempty"`
	Sortable  bool   `json:"sortable,omitempty"`
	Resizable bool   `json:"resizable,omitempty"`
	Sorted    string `json:"sorted,omitempty"` // "asc", "desc", or ""
	Colspan   int    `json:"colspan"`
	Rowspan   int    `json:"rowspan"`
}

// SectionView is a run of rows under one group header. HasHeader is false
// for the ungrouped section and the empty-named group.
type SectionView struct {
	Group     string    `json:"group,omitempty"`
	HasHeader bool      `json:"has_header"`
	Count     int       `json:"count,omitempty"`
	Collapsed bool      `json:"collapsed,omitempty"`
	Rows      []RowView `json:"rows"`
}

// RowView is one rendered row.
type RowView struct {
	ID       string     `json:"id"`
	Selected bool       `json:"selected,omitempty"`
	Cells    []CellView `json:"cells"`
}

// CellView is one rendered cell after merge resolution and formatting.
type CellView struct {
	Text    string `json:"text"`
	Align   string `json:"align,omitempty"`
	Color   string `json:"color,omitempty"`
	Colspan int    `json:"colspan"`
	Rowspan int    `json:"rowspan"`
}

// PagerView carries the pagination footer.
type PagerView struct {
	Page     int `json:"page"`
	Pages    int `json:"pages"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPage projects a mockup document plus the current grid snapshots,
// keyed by table widget id.
func NewPage(m *schema.Mockup, tables map[string]grid.State) Page {
	page := Page{Title: m.Title}
	for _, w := range m.Widgets {
		wv := WidgetView{Kind: w.Kind, Label: w.Label, Value: w.Value, Color: w.Color}
		if w.Kind == schema.KindTable {
			if state, ok := tables[w.ID]; ok {
				tv := NewTableView(w.ID, state)
				wv.Table = &tv
			}
		}
		page.Widgets = append(page.Widgets, wv)
	}
	return page
}

// NewTableView projects one grid snapshot.
func NewTableView(id string, s grid.State) TableView {
	cfg := s.Config()
	tv := TableView{
		ID:             id,
		SelectionCount: s.SelectionCount(),
		Loading:        s.Loading(),
		Actions:        cfg.Actions,
		Pager: PagerView{
			Page:     s.Page(),
			Pages:    s.Pages(),
			PageSize: s.PageSize(),
			Total:    s.TotalCount(),
		},
	}

	sortState := s.SortState()
	for _, col := range cfg.Columns {
		cv := ColumnView{
			ID:        col.ID,
			Label:     col.Label,
			Width:     s.ColumnWidth(col.ID),
			Align:     string(col.Align),
			Fixed:     string(col.Fixed),
			Sortable:  col.Sortable,
			Resizable: col.Resizable,
			Colspan:   spanOrOne(col.HeaderColspan),
			Rowspan:   spanOrOne(col.HeaderRowspan),
		}
		if sortState != nil && sortState.Column == col.ID {
			cv.Sorted = string(sortState.Direction)
		}
		tv.Columns = append(tv.Columns, cv)
	}

	for _, sec := range s.PageSections() {
		sv := SectionView{
			Group:     sec.Group,
			HasHeader: sec.Group != "",
			Count:     sec.Count,
			Collapsed: sec.Collapsed,
		}
		for _, row := range sec.Rows {
			sv.Rows = append(sv.Rows, newRowView(row, cfg.Columns, s))
		}
		tv.Sections = append(tv.Sections, sv)
	}
	return tv
}

func newRowView(row grid.Row, columns []grid.Column, s grid.State) RowView {
	rv := RowView{ID: row.ID, Selected: s.IsSelected(row.ID)}
	for _, cell := range grid.ResolveCells(row, columns) {
		text, color := formatCell(cell.Value, cell.Column)
		rv.Cells = append(rv.Cells, CellView{
			Text:    text,
			Align:   string(cell.Column.Align),
			Color:   color,
			Colspan: cell.Colspan,
			Rowspan: cell.Rowspan,
		})
	}
	return rv
}

func spanOrOne(n int) int {
	if n >= 1 {
		return n
	}
	return 1
}

// formatCell renders a cell value per the column's format kind. Values
// that do not parse for their declared kind fall back to plain
// stringification.
func formatCell(v any, col grid.Column) (text, color string) {
	if v == nil {
		return "", ""
	}
	switch col.Format {
	case grid.FormatCurrency:
		if f, ok := cellFloat(v); ok {
			return "$" + strconv.FormatFloat(f, 'f', 2, 64), ""
		}
	case grid.FormatDate:
		if t, ok := cellTime(v); ok {
			return t.Format("2006-01-02"), ""
		}
	case grid.FormatDatetime:
		if t, ok := cellTime(v); ok {
			return t.Format("2006-01-02 15:04"), ""
		}
	case grid.FormatStatus:
		key := fmt.Sprintf("%v", v)
		if style, ok := col.StatusMap[key]; ok {
			return style.Label, style.Color
		}
	}
	return fmt.Sprintf("%v", v), ""
}

func cellFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

var cellTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func cellTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range cellTimeLayouts {
			if parsed, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
