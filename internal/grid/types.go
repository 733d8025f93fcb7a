package grid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Format identifies how a column's values are interpreted and displayed.
type Format string

const (
	FormatText     Format = "text"
	FormatNumber   Format = "number"
	FormatCurrency Format = "currency"
	FormatDate     Format = "date"
	FormatDatetime Format = "datetime"
	FormatStatus   Format = "status"
)

// Align is a column's horizontal alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// FixedSide pins a column to one edge of the grid.
type FixedSide string

const (
	FixedNone  FixedSide = ""
	FixedLeft  FixedSide = "left"
	FixedRight FixedSide = "right"
)

// StatusStyle maps a raw status value to its display label and color.
type StatusStyle struct {
	Label string
	Color string
}

// Column describes one field's display, sortability, and formatting.
type Column struct {
	ID        string
	Field     string // data field key; defaults to ID when empty
	Label     string
	Format    Format
	Sortable  bool
	Align     Align
	Fixed     FixedSide
	Width     int // declared width in px; 0 means unset
	Resizable bool

	// Header spans for multi-row header layouts.
	HeaderColspan int
	HeaderRowspan int

	// StatusMap is consulted for FormatStatus columns.
	StatusMap map[string]StatusStyle
}

// FieldKey resolves the data field this column reads, defaulting to the
// column id.
func (c Column) FieldKey() string {
	if c.Field != "" {
		return c.Field
	}
	return c.ID
}

// Row is an opaque record with a stable identity. The identity never
// changes across transformations, which is what lets selection and merges
// survive re-derivation.
type Row struct {
	ID    string
	Cells map[string]any

	// Merges holds optional per-column cell-merge directives, keyed by
	// column id. See merge.go.
	Merges map[string]Merge
}

// Value returns the cell value for a field key, or nil when absent.
func (r Row) Value(field string) any {
	return r.Cells[field]
}

// NewRowID returns a synthetic identity for rows that arrive without one.
func NewRowID() string {
	return uuid.NewString()
}

// FilterKind selects the matching semantics of a filter field.
type FilterKind string

const (
	FilterText        FilterKind = "text"
	FilterSelect      FilterKind = "select"
	FilterNumberRange FilterKind = "number-range"
	FilterDateRange   FilterKind = "date-range"
)

// FilterField declares one filterable column and how it matches.
type FilterField struct {
	ID     string
	Column string // column id the filter targets
	Kind   FilterKind
}

// NumberRange is the value shape for FilterNumberRange. Either bound may be
// nil, meaning unbounded on that side.
type NumberRange struct {
	Min *float64
	Max *float64
}

// DateRange is the value shape for FilterDateRange. Bounds are inclusive;
// either may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// FilterValues maps filter field id to its current value. A nil, empty, or
// absent value makes that filter inert.
type FilterValues map[string]any

// SortDirection orders ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig names the single active sort column and direction.
type SortConfig struct {
	Column    string
	Direction SortDirection
}

// GroupConfig enables grouping by one field.
type GroupConfig struct {
	Field           string
	Collapsible     bool
	DefaultExpanded bool
}

// SelectionMode controls how selectRow behaves.
type SelectionMode string

const (
	SelectionNone     SelectionMode = "none"
	SelectionSingle   SelectionMode = "single"
	SelectionMultiple SelectionMode = "multiple"
)

// Confirm is an optional confirmation gate a host must present before
// invoking a row action. The engine never blocks on it.
type Confirm struct {
	Title   string
	Message string
}

// RowAction declares a per-row action surfaced to the host.
type RowAction struct {
	ID      string
	Label   string
	Confirm *Confirm
}

// Default layout bounds applied when the config leaves them zero.
const (
	DefaultMinColumnWidth = 50
	DefaultMaxColumnWidth = 500
	DefaultPageSize       = 10
)

// Config carries the static schema of one grid instance.
type Config struct {
	Columns      []Column
	FilterFields []FilterField
	Grouping     *GroupConfig
	Selection    SelectionMode
	Actions      []RowAction
	PageSize     int
	MinColWidth  int
	MaxColWidth  int
}

// normalized returns a copy with zero values replaced by defaults.
func (c Config) normalized() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MinColWidth <= 0 {
		c.MinColWidth = DefaultMinColumnWidth
	}
	if c.MaxColWidth <= 0 {
		c.MaxColWidth = DefaultMaxColumnWidth
	}
	if c.Selection == "" {
		c.Selection = SelectionNone
	}
	return c
}

// stringify renders any cell value the way filters and group names see it.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
