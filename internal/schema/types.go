package schema

import (
	"fmt"

	"mockview/internal/grid"
)

// Mockup is one YAML mockup document: a titled page of widgets.
type Mockup struct {
	Title   string   `yaml:"title"`
	Widgets []Widget `yaml:"widgets"`
}

// Widget is a single page element. Kind selects the variant; only the
// table kind carries structured configuration, the rest are label/value
// presentational glue.
type Widget struct {
	Kind  string `yaml:"kind"`
	ID    string `yaml:"id,omitempty"`
	Label string `yaml:"label,omitempty"`
	Value string `yaml:"value,omitempty"`
	Color string `yaml:"color,omitempty"`

	Table *TableDef `yaml:"table,omitempty"`
}

// Widget kinds accepted by the CUE schema.
const (
	KindBadge   = "badge"
	KindChip    = "chip"
	KindHeading = "heading"
	KindStatus  = "status"
	KindNote    = "note"
	KindTable   = "table"
)

// TableDef is the YAML shape of a table widget.
type TableDef struct {
	Columns   []ColumnDef   `yaml:"columns"`
	Rows      []RowDef      `yaml:"rows,omitempty"`
	Filters   []FilterDef   `yaml:"filters,omitempty"`
	Grouping  *GroupDef     `yaml:"grouping,omitempty"`
	Selection string        `yaml:"selection,omitempty"` // none|single|multiple
	PageSize  int           `yaml:"pageSize,omitempty"`
	Actions   []ActionDef   `yaml:"actions,omitempty"`
	Source    *SourceDef    `yaml:"source,omitempty"`
	Layout    *LayoutBounds `yaml:"layout,omitempty"`
}

// ColumnDef is the YAML shape of one column.
type ColumnDef struct {
	ID            string               `yaml:"id"`
	Field         string               `yaml:"field,omitempty"`
	Label         string               `yaml:"label,omitempty"`
	Format        string               `yaml:"format,omitempty"`
	Sortable      bool                 `yaml:"sortable,omitempty"`
	Align         string               `yaml:"align,omitempty"`
	Fixed         string               `yaml:"fixed,omitempty"`
	Width         int                  `yaml:"width,omitempty"`
	Resizable     bool                 `yaml:"resizable,omitempty"`
	HeaderColspan int                  `yaml:"headerColspan,omitempty"`
	HeaderRowspan int                  `yaml:"headerRowspan,omitempty"`
	StatusMap     map[string]StatusDef `yaml:"statusMap,omitempty"`
}

// StatusDef maps one raw status value to its display label and color.
type StatusDef struct {
	Label string `yaml:"label"`
	Color string `yaml:"color,omitempty"`
}

// RowDef is the YAML shape of one row. ID may be a string or a number; a
// missing id gets a synthetic identity at normalization time.
type RowDef struct {
	ID     any                 `yaml:"id,omitempty"`
	Cells  map[string]any      `yaml:"cells"`
	Merges map[string]MergeDef `yaml:"merges,omitempty"`
}

// MergeDef is the YAML shape of a per-cell merge directive.
type MergeDef struct {
	Hidden  bool `yaml:"hidden,omitempty"`
	Colspan int  `yaml:"colspan,omitempty"`
	Rowspan int  `yaml:"rowspan,omitempty"`
}

// FilterDef declares one filter field.
type FilterDef struct {
	ID     string `yaml:"id"`
	Column string `yaml:"column"`
	Kind   string `yaml:"kind"` // text|select|number-range|date-range
}

// GroupDef enables grouping by one field.
type GroupDef struct {
	Field           string `yaml:"field"`
	Collapsible     bool   `yaml:"collapsible,omitempty"`
	DefaultExpanded bool   `yaml:"defaultExpanded,omitempty"`
}

// ActionDef declares a per-row action, optionally gated by a confirmation.
type ActionDef struct {
	ID      string      `yaml:"id"`
	Label   string      `yaml:"label"`
	Confirm *ConfirmDef `yaml:"confirm,omitempty"`
}

// ConfirmDef is the confirmation gate presented before the action runs.
type ConfirmDef struct {
	Title   string `yaml:"title,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// SourceDef points a table at an external dataset instead of inline rows.
// Only the sqlite kind is supported; see internal/source.
type SourceDef struct {
	Kind  string `yaml:"kind"` // "sqlite"
	Path  string `yaml:"path"`
	Query string `yaml:"query"`
}

// LayoutBounds overrides the column width clamp bounds.
type LayoutBounds struct {
	MinColWidth int `yaml:"minColWidth,omitempty"`
	MaxColWidth int `yaml:"maxColWidth,omitempty"`
}

// GridConfig converts the table definition into the engine schema.
func (t *TableDef) GridConfig() grid.Config {
	cfg := grid.Config{
		Selection: grid.SelectionMode(t.Selection),
		PageSize:  t.PageSize,
	}
	if t.Layout != nil {
		cfg.MinColWidth = t.Layout.MinColWidth
		cfg.MaxColWidth = t.Layout.MaxColWidth
	}
	for _, c := range t.Columns {
		col := grid.Column{
			ID:            c.ID,
			Field:         c.Field,
			Label:         c.Label,
			Format:        grid.Format(c.Format),
			Sortable:      c.Sortable,
			Align:         grid.Align(c.Align),
			Fixed:         grid.FixedSide(c.Fixed),
			Width:         c.Width,
			Resizable:     c.Resizable,
			HeaderColspan: c.HeaderColspan,
			HeaderRowspan: c.HeaderRowspan,
		}
		if col.Label == "" {
			col.Label = c.ID
		}
		if len(c.StatusMap) > 0 {
			col.StatusMap = make(map[string]grid.StatusStyle, len(c.StatusMap))
			for value, style := range c.StatusMap {
				col.StatusMap[value] = grid.StatusStyle{Label: style.Label, Color: style.Color}
			}
		}
		cfg.Columns = append(cfg.Columns, col)
	}
	for _, f := range t.Filters {
		cfg.FilterFields = append(cfg.FilterFields, grid.FilterField{
			ID:     f.ID,
			Column: f.Column,
			Kind:   grid.FilterKind(f.Kind),
		})
	}
	if g := t.Grouping; g != nil {
		cfg.Grouping = &grid.GroupConfig{
			Field:           g.Field,
			Collapsible:     g.Collapsible,
			DefaultExpanded: g.DefaultExpanded,
		}
	}
	for _, a := range t.Actions {
		action := grid.RowAction{ID: a.ID, Label: a.Label}
		if a.Confirm != nil {
			action.Confirm = &grid.Confirm{Title: a.Confirm.Title, Message: a.Confirm.Message}
		}
		cfg.Actions = append(cfg.Actions, action)
	}
	return cfg
}

// GridRows normalizes the inline row definitions: identities stringify, and
// rows without an id receive a synthetic one.
func (t *TableDef) GridRows() []grid.Row {
	rows := make([]grid.Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := grid.Row{
			ID:    rowID(r.ID),
			Cells: r.Cells,
		}
		if len(r.Merges) > 0 {
			row.Merges = make(map[string]grid.Merge, len(r.Merges))
			for col, m := range r.Merges {
				row.Merges[col] = grid.Merge{
					Hidden:  m.Hidden,
					Colspan: m.Colspan,
					Rowspan: m.Rowspan,
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// rowID normalizes a YAML identity (string or number) to a string, minting
// a synthetic id when absent.
func rowID(v any) string {
	if v == nil {
		return grid.NewRowID()
	}
	return fmt.Sprintf("%v", v)
}
