package grid

// WithGroupToggled flips one group's collapsed membership. Toggling twice
// restores the prior state. The empty-string group has no header and can
// never be collapsed; toggling it is a no-op, as is any toggle while
// grouping is disabled or non-collapsible.
func (s State) WithGroupToggled(name string) State {
	g := s.cfg.Grouping
	if g == nil || !g.Collapsible || name == "" {
		return s
	}
	next := copySet(s.collapsed)
	if _, ok := next[name]; ok {
		delete(next, name)
	} else {
		next[name] = struct{}{}
	}
	s.collapsed = next
	return s
}

// WithAllGroupsCollapsed collapses every group derived from the original
// data, not just the groups visible on the current page.
func (s State) WithAllGroupsCollapsed() State {
	g := s.cfg.Grouping
	if g == nil || !g.Collapsible {
		return s
	}
	next := make(map[string]struct{})
	for _, name := range GroupNames(s.original, g.Field) {
		next[name] = struct{}{}
	}
	s.collapsed = next
	return s
}

// WithAllGroupsExpanded clears the collapsed set.
func (s State) WithAllGroupsExpanded() State {
	if s.cfg.Grouping == nil {
		return s
	}
	s.collapsed = map[string]struct{}{}
	return s
}

// IsCollapsed reports whether a group is collapsed. Meaningful only while
// grouping is enabled.
func (s State) IsCollapsed(name string) bool {
	_, ok := s.collapsed[name]
	return ok
}

// CollapsedGroups returns the collapsed group names; order is unspecified.
func (s State) CollapsedGroups() []string {
	names := make([]string, 0, len(s.collapsed))
	for name := range s.collapsed {
		names = append(names, name)
	}
	return names
}

// PageSection is a contiguous run of same-group rows within the current
// page, in render order. Collapsed sections keep their header but hide
// their rows.
type PageSection struct {
	// Group is the group name; empty for the ungrouped section, which is
	// rendered without a header.
	Group string

	// Count is the group's full member count across all pages.
	Count int

	// Collapsed mirrors the collapse set at projection time.
	Collapsed bool

	// Rows are this section's rows on the current page. Empty when the
	// section is collapsed.
	Rows []Row
}

// PageSections projects the current page into render-ready sections. With
// grouping disabled it returns a single headerless section. Pagination
// slices the flattened group-ordered sequence, so a group that spans a page
// boundary contributes a section to each page it touches.
func (s State) PageSections() []PageSection {
	if s.cfg.Grouping == nil {
		return []PageSection{{Rows: s.derived}}
	}

	field := s.cfg.Grouping.Field
	var sections []PageSection
	for _, row := range s.derived {
		name := stringify(row.Value(field))
		if n := len(sections); n == 0 || sections[n-1].Group != name {
			sections = append(sections, PageSection{
				Group:     name,
				Count:     s.GroupCount(name),
				Collapsed: name != "" && s.IsCollapsed(name),
			})
		}
		sec := &sections[len(sections)-1]
		if !sec.Collapsed {
			sec.Rows = append(sec.Rows, row)
		}
	}
	return sections
}
