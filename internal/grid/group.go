package grid

// Group is a named cluster of rows sharing one field value. Groups preserve
// the intra-group order of the rows they were built from.
type Group struct {
	Name string
	Rows []Row
}

// GroupRows clusters rows by the given field, preserving first-encountered
// order of group names. Rows whose field value stringifies to "" land in the
// empty-named group, which is never given a header and is never collapsible.
func GroupRows(rows []Row, field string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, row := range rows {
		name := stringify(row.Value(field))
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// Flatten concatenates group member rows in group order.
func Flatten(groups []Group) []Row {
	n := 0
	for _, g := range groups {
		n += len(g.Rows)
	}
	out := make([]Row, 0, n)
	for _, g := range groups {
		out = append(out, g.Rows...)
	}
	return out
}

// GroupNames derives the full set of group names by one pass over rows.
// Used by collapse-all, which must cover every group in the original data,
// not just the groups visible on the current page. The empty-string group
// is excluded because it can never be collapsed.
func GroupNames(rows []Row, field string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, row := range rows {
		name := stringify(row.Value(field))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
