package grid

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator provides locale-aware string ordering for sort comparisons.
// collate.Collator is not safe for concurrent use, but the engine is
// single-writer (see doc.go), so one shared instance suffices.
var collator = collate.New(language.Und)

// Filter keeps only rows satisfying every active filter (AND semantics).
// A filter whose value is nil or empty is inert and passes every row.
// Filter fields referencing unknown columns, and filter kinds the engine
// does not recognize, also pass every row.
func Filter(rows []Row, values FilterValues, fields []FilterField, columns []Column) []Row {
	active := activeFilters(values, fields)
	if len(active) == 0 {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}

	byID := columnsByID(columns)
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowPasses(row, active, byID) {
			out = append(out, row)
		}
	}
	return out
}

type activeFilter struct {
	field FilterField
	value any
}

func activeFilters(values FilterValues, fields []FilterField) []activeFilter {
	var active []activeFilter
	for _, f := range fields {
		v, ok := values[f.ID]
		if !ok || isInert(v) {
			continue
		}
		active = append(active, activeFilter{field: f, value: v})
	}
	return active
}

// isInert reports whether a filter value carries no constraint.
func isInert(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case NumberRange:
		return val.Min == nil && val.Max == nil
	case *NumberRange:
		return val == nil || (val.Min == nil && val.Max == nil)
	case DateRange:
		return val.Start == nil && val.End == nil
	case *DateRange:
		return val == nil || (val.Start == nil && val.End == nil)
	}
	return false
}

func rowPasses(row Row, active []activeFilter, byID map[string]Column) bool {
	for _, af := range active {
		col, ok := byID[af.field.Column]
		if !ok {
			continue
		}
		if !matches(row.Value(col.FieldKey()), af.field.Kind, af.value) {
			return false
		}
	}
	return true
}

func matches(cell any, kind FilterKind, value any) bool {
	switch kind {
	case FilterText:
		needle, ok := value.(string)
		if !ok {
			return true
		}
		return strings.Contains(
			strings.ToLower(stringify(cell)),
			strings.ToLower(needle),
		)
	case FilterSelect:
		want, ok := value.(string)
		if !ok {
			return true
		}
		return stringify(cell) == want
	case FilterNumberRange:
		r, ok := asNumberRange(value)
		if !ok {
			return true
		}
		n, ok := toFloat(cell)
		if !ok {
			return false
		}
		if r.Min != nil && n < *r.Min {
			return false
		}
		if r.Max != nil && n > *r.Max {
			return false
		}
		return true
	case FilterDateRange:
		r, ok := asDateRange(value)
		if !ok {
			return true
		}
		t, ok := toTime(cell)
		if !ok {
			return false
		}
		if r.Start != nil && t.Before(*r.Start) {
			return false
		}
		if r.End != nil && t.After(*r.End) {
			return false
		}
		return true
	}
	// Unrecognized kind: pass-through.
	return true
}

func asNumberRange(v any) (NumberRange, bool) {
	switch r := v.(type) {
	case NumberRange:
		return r, true
	case *NumberRange:
		if r != nil {
			return *r, true
		}
	}
	return NumberRange{}, false
}

func asDateRange(v any) (DateRange, bool) {
	switch r := v.(type) {
	case DateRange:
		return r, true
	case *DateRange:
		if r != nil {
			return *r, true
		}
	}
	return DateRange{}, false
}

// Sort returns an order-preserving copy when cfg is nil or names an unknown
// column. Otherwise it returns a stably sorted copy: rows with equal keys
// keep their pre-sort relative order. The comparator is driven by the
// column's declared format, with nil values sorting last under asc.
func Sort(rows []Row, cfg *SortConfig, columns []Column) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if cfg == nil {
		return out
	}
	col, ok := columnsByID(columns)[cfg.Column]
	if !ok {
		return out
	}

	field := col.FieldKey()
	desc := cfg.Direction == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		c := compareCells(out[i].Value(field), out[j].Value(field), col.Format)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compareCells orders two cell values under the column's declared format:
// nil sorts last, number and currency columns compare numerically (digit
// strings coerce, matching rows scanned out of TEXT storage), date columns
// compare chronologically, and everything else compares with locale-aware
// string ordering. Cells that fail their column's coercion fall back to
// the string comparator.
func compareCells(a, b any, format Format) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch format {
	case FormatNumber, FormatCurrency:
		an, aok := toFloat(a)
		bn, bok := toFloat(b)
		if aok && bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	case FormatDate, FormatDatetime:
		at, aok := toTime(a)
		bt, bok := toTime(b)
		if aok && bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	return collator.CompareString(stringify(a), stringify(b))
}

// Paginate returns rows[page*size : page*size+size] with 0-based pages.
// Requests beyond the data yield an empty slice; clamping into the valid
// page range is the caller's responsibility.
func Paginate(rows []Row, page, size int) []Row {
	if page < 0 || size <= 0 {
		return nil
	}
	start := page * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]Row, end-start)
	copy(out, rows[start:end])
	return out
}

func columnsByID(columns []Column) map[string]Column {
	byID := make(map[string]Column, len(columns))
	for _, c := range columns {
		byID[c.ID] = c
	}
	return byID
}

// toFloat coerces the numeric cell representations the loader produces.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
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

// dateLayouts are tried in order when a cell holds a date as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
