package web

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"mockview/internal/grid"
)

// parseIntent translates a posted form into a typed engine intent. The
// transport is deliberately dumb: one "intent" discriminator plus flat
// parameters, mirroring the intent catalogue of the controller.
func parseIntent(form url.Values, cfg grid.Config) (grid.Intent, error) {
	switch kind := form.Get("intent"); kind {
	case "sort":
		return grid.SortRequest{ColumnID: form.Get("column")}, nil
	case "filter":
		return grid.FilterApply{Values: parseFilterValues(form, cfg)}, nil
	case "filter-reset":
		return grid.FilterReset{}, nil
	case "select":
		return grid.SelectRow{ID: form.Get("row")}, nil
	case "select-all":
		return grid.SelectAll{Flag: form.Get("flag") == "true"}, nil
	case "page":
		page, err := strconv.Atoi(form.Get("page"))
		if err != nil {
			return nil, fmt.Errorf("bad page %q", form.Get("page"))
		}
		return grid.PageChange{Page: page}, nil
	case "page-size":
		size, err := strconv.Atoi(form.Get("size"))
		if err != nil {
			return nil, fmt.Errorf("bad page size %q", form.Get("size"))
		}
		return grid.PageSizeChange{Size: size}, nil
	case "group-toggle":
		return grid.GroupToggle{Name: form.Get("group")}, nil
	case "group-collapse-all":
		return grid.CollapseAllGroups{}, nil
	case "group-expand-all":
		return grid.ExpandAllGroups{}, nil
	case "resize":
		width, err := strconv.ParseFloat(form.Get("width"), 64)
		if err != nil {
			return nil, fmt.Errorf("bad width %q", form.Get("width"))
		}
		return grid.SetColumnWidth{ColumnID: form.Get("column"), Width: width}, nil
	case "action":
		return grid.InvokeRowAction{ActionID: form.Get("action"), RowID: form.Get("row")}, nil
	default:
		return nil, fmt.Errorf("unknown intent %q", kind)
	}
}

// parseFilterValues reads filter.<id> parameters shaped per the declared
// filter kind. Absent or blank parameters stay inert.
func parseFilterValues(form url.Values, cfg grid.Config) grid.FilterValues {
	values := grid.FilterValues{}
	for _, f := range cfg.FilterFields {
		prefix := "filter." + f.ID
		switch f.Kind {
		case grid.FilterText, grid.FilterSelect:
			if v := form.Get(prefix); v != "" {
				values[f.ID] = v
			}
		case grid.FilterNumberRange:
			r := grid.NumberRange{
				Min: parseFloatParam(form.Get(prefix + ".min")),
				Max: parseFloatParam(form.Get(prefix + ".max")),
			}
			if r.Min != nil || r.Max != nil {
				values[f.ID] = r
			}
		case grid.FilterDateRange:
			r := grid.DateRange{
				Start: parseDateParam(form.Get(prefix + ".start")),
				End:   parseDateParam(form.Get(prefix + ".end")),
			}
			if r.Start != nil || r.End != nil {
				values[f.ID] = r
			}
		}
	}
	return values
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
