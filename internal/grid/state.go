package grid

// State is an immutable snapshot of one grid instance. Mutators return a
// new State sharing unchanged internals; maps and slices are copied before
// modification, never written through.
//
// derived is always a pure function of (original, filters, sort, page,
// pageSize). Selection, group collapse, and column widths are orthogonal:
// mutating them does not re-derive the view.
type State struct {
	cfg Config

	original []Row
	derived  []Row   // current page window, post filter/sort/group
	groups   []Group // full post-sort groups; nil when grouping is off

	filters FilterValues
	sort    *SortConfig

	selected  map[string]struct{}
	collapsed map[string]struct{}
	widths    map[string]int

	page     int
	pageSize int
	total    int // post-filter, pre-page count

	// totalOverride supports server-driven pagination: original holds only
	// the current page while the override reflects the remote full count.
	totalOverride *int

	resize  *resizeDrag
	loading bool
}

// NewState builds the initial snapshot for a grid instance. Declared column
// widths are clamped into the configured bounds immediately; every later
// width mutation maintains that invariant.
func NewState(cfg Config, rows []Row) State {
	cfg = cfg.normalized()
	s := State{
		cfg:       cfg,
		original:  rows,
		filters:   FilterValues{},
		selected:  map[string]struct{}{},
		collapsed: map[string]struct{}{},
		widths:    map[string]int{},
		pageSize:  cfg.PageSize,
	}
	for _, col := range cfg.Columns {
		if col.Width > 0 {
			s.widths[col.ID] = clampWidth(col.Width, cfg)
		}
	}
	if g := cfg.Grouping; g != nil && g.Collapsible && !g.DefaultExpanded {
		for _, name := range GroupNames(rows, g.Field) {
			s.collapsed[name] = struct{}{}
		}
	}
	return s.derive()
}

// derive recomputes the view wholesale: filter, sort, group, paginate.
func (s State) derive() State {
	filtered := Filter(s.original, s.filters, s.cfg.FilterFields, s.cfg.Columns)
	s.total = len(filtered)
	if s.totalOverride != nil {
		s.total = *s.totalOverride
	}

	sorted := Sort(filtered, s.sort, s.cfg.Columns)
	if g := s.cfg.Grouping; g != nil {
		s.groups = GroupRows(sorted, g.Field)
		sorted = Flatten(s.groups)
	} else {
		s.groups = nil
	}
	if s.totalOverride != nil {
		// Server-driven pagination: the source already sliced the page, so
		// the local window is the whole local dataset and page is only the
		// pager's position within the remote count.
		s.derived = sorted
	} else {
		s.derived = Paginate(sorted, s.page, s.pageSize)
	}
	return s
}

// WithData replaces the dataset wholesale, resets the page to 0, clears the
// selection, and recomputes the view. A non-nil totalCount overrides the
// post-filter count for server-driven pagination.
func (s State) WithData(rows []Row, totalCount *int) State {
	s.original = rows
	s.totalOverride = totalCount
	s.page = 0
	s.selected = map[string]struct{}{}
	return s.derive()
}

// WithSort sets or clears the sort config and recomputes the view.
func (s State) WithSort(cfg *SortConfig) State {
	s.sort = cfg
	return s.derive()
}

// WithFilters replaces the filter values, resets to page 0, and recomputes
// the view. A nil map clears all filters.
func (s State) WithFilters(values FilterValues) State {
	if values == nil {
		values = FilterValues{}
	}
	s.filters = values
	s.page = 0
	return s.derive()
}

// WithPage moves to the given 0-based page, clamped into the valid range,
// and recomputes the view.
func (s State) WithPage(page int) State {
	s.page = clampPage(page, s.total, s.pageSize)
	return s.derive()
}

// WithPageSize changes the page size, resets to page 0, and recomputes the
// view. Non-positive sizes are ignored.
func (s State) WithPageSize(size int) State {
	if size <= 0 {
		return s
	}
	s.pageSize = size
	s.page = 0
	return s.derive()
}

// WithLoading toggles the loading flag surfaced to render adapters.
func (s State) WithLoading(loading bool) State {
	s.loading = loading
	return s
}

// clampPage clamps a 0-based page into [0, pageCount-1].
func clampPage(page, total, size int) int {
	if page <= 0 {
		return 0
	}
	last := PageCount(total, size) - 1
	if page > last {
		return last
	}
	return page
}

// PageCount returns ceil(total/size), minimum 1.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	n := (total + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// Config returns the static schema this grid was built with.
func (s State) Config() Config { return s.cfg }

// Rows returns the derived view: the rows of the current page in render
// order. Callers must not mutate the returned slice.
func (s State) Rows() []Row { return s.derived }

// OriginalRows returns the authoritative dataset.
func (s State) OriginalRows() []Row { return s.original }

// TotalCount returns the filtered-but-unpaginated row count, or the
// server-provided override when one is set.
func (s State) TotalCount() int { return s.total }

// Page returns the current 0-based page.
func (s State) Page() int { return s.page }

// PageSize returns the current page size.
func (s State) PageSize() int { return s.pageSize }

// Pages returns the current page count derived from TotalCount.
func (s State) Pages() int { return PageCount(s.total, s.pageSize) }

// SortState returns the active sort config, or nil when unsorted.
func (s State) SortState() *SortConfig { return s.sort }

// Filters returns the current filter values. Callers must not mutate the
// returned map.
func (s State) Filters() FilterValues { return s.filters }

// Loading reports the loading flag.
func (s State) Loading() bool { return s.loading }

// GroupCount returns the member count of a group over the full filtered
// dataset, not just the current page. Returns 0 for unknown groups.
func (s State) GroupCount(name string) int {
	for _, g := range s.groups {
		if g.Name == name {
			return len(g.Rows)
		}
	}
	return 0
}

// copySet clones a string set before a write.
func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}
