package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamRows() []Row {
	return []Row{
		{ID: "1", Cells: map[string]any{"team": "A", "name": "ann"}},
		{ID: "2", Cells: map[string]any{"team": "A", "name": "amy"}},
		{ID: "3", Cells: map[string]any{"team": "B", "name": "bob"}},
	}
}

func groupedConfig() Config {
	return Config{
		Columns: []Column{
			{ID: "team", Sortable: true},
			{ID: "name", Sortable: true},
		},
		Grouping: &GroupConfig{Field: "team", Collapsible: true, DefaultExpanded: true},
	}
}

// TestGroupRows_FirstEncounteredOrder is Scenario D: teams [A, A, B] group
// in order [A, B] with group A holding 2 members.
func TestGroupRows_FirstEncounteredOrder(t *testing.T) {
	groups := GroupRows(teamRows(), "team")

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Name)
	assert.Equal(t, "B", groups[1].Name)
	assert.Len(t, groups[0].Rows, 2)
}

// TestGroupRows_OrderIsNotAlphabetical verifies encounter order wins over
// lexical order.
func TestGroupRows_OrderIsNotAlphabetical(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: map[string]any{"team": "Z"}},
		{ID: "2", Cells: map[string]any{"team": "A"}},
		{ID: "3", Cells: map[string]any{"team": "Z"}},
	}

	groups := GroupRows(rows, "team")
	require.Len(t, groups, 2)
	assert.Equal(t, "Z", groups[0].Name)
	assert.Equal(t, "A", groups[1].Name)
}

// TestGroupRows_PreservesIntraGroupOrder verifies grouping keeps each
// member block in input (post-sort) order.
func TestGroupRows_PreservesIntraGroupOrder(t *testing.T) {
	groups := GroupRows(teamRows(), "team")
	assert.Equal(t, []string{"1", "2"}, rowIDs(groups[0].Rows))
}

// TestGroupNames_SkipsEmptyGroup verifies the empty-string group never
// appears in the collapsible name set.
func TestGroupNames_SkipsEmptyGroup(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: map[string]any{"team": "A"}},
		{ID: "2", Cells: map[string]any{}},
	}

	assert.Equal(t, []string{"A"}, GroupNames(rows, "team"))
}

// TestWithGroupToggled_ToggleOfToggle verifies toggling twice restores the
// prior collapse state.
func TestWithGroupToggled_ToggleOfToggle(t *testing.T) {
	s := NewState(groupedConfig(), teamRows())

	once := s.WithGroupToggled("A")
	assert.True(t, once.IsCollapsed("A"))
	assert.False(t, s.IsCollapsed("A"))

	twice := once.WithGroupToggled("A")
	assert.False(t, twice.IsCollapsed("A"))
}

// TestWithGroupToggled_EmptyNameIsNoOp verifies the empty-string group can
// never be collapsed.
func TestWithGroupToggled_EmptyNameIsNoOp(t *testing.T) {
	s := NewState(groupedConfig(), teamRows()).WithGroupToggled("")
	assert.Empty(t, s.CollapsedGroups())
}

// TestCollapseAll_CoversOriginalData verifies collapse-all derives its name
// set from the original data even when filters hide groups from view.
func TestCollapseAll_CoversOriginalData(t *testing.T) {
	cfg := groupedConfig()
	cfg.FilterFields = []FilterField{{ID: "name", Column: "name", Kind: FilterText}}
	s := NewState(cfg, teamRows()).WithFilters(FilterValues{"name": "ann"})
	require.Len(t, s.Rows(), 1)

	s = s.WithAllGroupsCollapsed()
	assert.ElementsMatch(t, []string{"A", "B"}, s.CollapsedGroups())

	s = s.WithAllGroupsExpanded()
	assert.Empty(t, s.CollapsedGroups())
}

// TestPageSections_HeadersAndCounts verifies the page projection emits one
// section per contiguous group run with full-dataset member counts.
func TestPageSections_HeadersAndCounts(t *testing.T) {
	s := NewState(groupedConfig(), teamRows())

	sections := s.PageSections()
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].Group)
	assert.Equal(t, 2, sections[0].Count)
	assert.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "B", sections[1].Group)
	assert.Equal(t, 1, sections[1].Count)
}

// TestPageSections_CollapsedHidesRows verifies collapsed sections keep
// their header but drop member rows, without re-deriving the pipeline.
func TestPageSections_CollapsedHidesRows(t *testing.T) {
	s := NewState(groupedConfig(), teamRows()).WithGroupToggled("A")

	sections := s.PageSections()
	require.Len(t, sections, 2)
	assert.True(t, sections[0].Collapsed)
	assert.Empty(t, sections[0].Rows)
	assert.Len(t, sections[1].Rows, 1)
}

// TestPageSections_EmptyGroupHasNoHeader verifies rows with an empty group
// value render headerless and are always shown.
func TestPageSections_EmptyGroupHasNoHeader(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: map[string]any{"team": "A"}},
		{ID: "2", Cells: map[string]any{}},
	}
	s := NewState(groupedConfig(), rows).WithAllGroupsCollapsed()

	sections := s.PageSections()
	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Rows, "group A collapsed")
	assert.Equal(t, "", sections[1].Group)
	assert.False(t, sections[1].Collapsed)
	assert.Len(t, sections[1].Rows, 1, "empty-named group rows are always shown")
}

// TestGrouping_ReordersIntoContiguousBlocks verifies grouping runs after
// sort: blocks form in first-encountered order over the sorted sequence
// while intra-group sort order is preserved.
func TestGrouping_ReordersIntoContiguousBlocks(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: map[string]any{"team": "B", "name": "zed"}},
		{ID: "2", Cells: map[string]any{"team": "A", "name": "amy"}},
		{ID: "3", Cells: map[string]any{"team": "B", "name": "ann"}},
	}
	s := NewState(groupedConfig(), rows).
		WithSort(&SortConfig{Column: "name", Direction: SortAsc})

	// Sorted: amy(A), ann(B), zed(B). First-encountered group order: A, B.
	assert.Equal(t, []string{"2", "3", "1"}, rowIDs(s.Rows()))
}

// TestGrouping_GroupMaySpanPages documents the pagination decision:
// pagination slices the flattened group-ordered sequence, so a group can
// split across a page boundary.
func TestGrouping_GroupMaySpanPages(t *testing.T) {
	rows := []Row{
		{ID: "1", Cells: map[string]any{"team": "A"}},
		{ID: "2", Cells: map[string]any{"team": "A"}},
		{ID: "3", Cells: map[string]any{"team": "A"}},
		{ID: "4", Cells: map[string]any{"team": "B"}},
	}
	cfg := groupedConfig()
	cfg.PageSize = 2
	s := NewState(cfg, rows)

	require.Equal(t, 2, s.Pages())
	assert.Equal(t, []string{"1", "2"}, rowIDs(s.Rows()))

	page1 := s.WithPage(1)
	assert.Equal(t, []string{"3", "4"}, rowIDs(page1.Rows()))

	sections := page1.PageSections()
	require.Len(t, sections, 2)
	assert.Equal(t, "A", sections[0].Group)
	assert.Equal(t, 3, sections[0].Count, "count covers the whole group, not the page slice")
}
