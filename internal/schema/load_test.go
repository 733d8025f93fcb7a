package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockview/internal/grid"
)

const validMockup = `
title: Team Directory
widgets:
  - kind: heading
    label: People
  - kind: badge
    label: Beta
    color: purple
  - kind: table
    id: people
    table:
      columns:
        - id: name
          label: Name
          sortable: true
          resizable: true
          width: 160
        - id: age
          format: number
          sortable: true
        - id: status
          format: status
          statusMap:
            active: {label: Active, color: green}
            inactive: {label: Inactive, color: gray}
      filters:
        - id: name
          column: name
          kind: text
        - id: status
          column: status
          kind: select
      grouping:
        field: team
        collapsible: true
        defaultExpanded: true
      selection: multiple
      pageSize: 10
      actions:
        - id: delete
          label: Delete
          confirm:
            title: Delete row
            message: This cannot be undone.
      rows:
        - id: 1
          cells: {name: Bob, age: 34, status: active, team: A}
        - id: 2
          cells: {name: Al, age: 28, status: active, team: A}
          merges:
            age: {colspan: 2}
            status: {hidden: true}
        - cells: {name: Cy, age: 45, status: inactive, team: B}
`

// TestParse_ValidMockup decodes the full document model.
func TestParse_ValidMockup(t *testing.T) {
	m, err := Parse("team.yaml", []byte(validMockup))
	require.NoError(t, err)

	assert.Equal(t, "Team Directory", m.Title)
	require.Len(t, m.Widgets, 3)
	assert.Equal(t, KindHeading, m.Widgets[0].Kind)

	table := m.Widgets[2].Table
	require.NotNil(t, table)
	assert.Len(t, table.Columns, 3)
	assert.Equal(t, "multiple", table.Selection)
	require.Len(t, table.Actions, 1)
	require.NotNil(t, table.Actions[0].Confirm)
	assert.Equal(t, "Delete row", table.Actions[0].Confirm.Title)
}

// TestParse_GridConversion verifies the table definition maps onto the
// engine schema and that rows normalize identities and merges.
func TestParse_GridConversion(t *testing.T) {
	m, err := Parse("team.yaml", []byte(validMockup))
	require.NoError(t, err)
	table := m.Widgets[2].Table

	cfg := table.GridConfig()
	assert.Equal(t, grid.SelectionMultiple, cfg.Selection)
	assert.Equal(t, 10, cfg.PageSize)
	require.Len(t, cfg.Columns, 3)
	assert.Equal(t, grid.FormatStatus, cfg.Columns[2].Format)
	assert.Equal(t, "Active", cfg.Columns[2].StatusMap["active"].Label)
	require.NotNil(t, cfg.Grouping)
	assert.Equal(t, "team", cfg.Grouping.Field)

	rows := table.GridRows()
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0].ID, "numeric ids stringify")
	assert.True(t, rows[1].Merges["status"].Hidden)
	assert.Equal(t, 2, rows[1].Merges["age"].Colspan)
	assert.NotEmpty(t, rows[2].ID, "missing ids get a synthetic identity")
}

// TestParse_UnknownWidgetKind is rejected by the CUE schema.
func TestParse_UnknownWidgetKind(t *testing.T) {
	doc := `
title: Bad
widgets:
  - kind: carousel
`
	_, err := Parse("bad.yaml", []byte(doc))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
}

// TestParse_TableWithoutColumns is rejected: a table needs at least one
// column.
func TestParse_TableWithoutColumns(t *testing.T) {
	doc := `
title: Bad
widgets:
  - kind: table
    table:
      columns: []
`
	_, err := Parse("bad.yaml", []byte(doc))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
}

// TestParse_BadFilterKind is rejected by the filter kind enum.
func TestParse_BadFilterKind(t *testing.T) {
	doc := `
title: Bad
widgets:
  - kind: table
    table:
      columns:
        - id: a
      filters:
        - id: f
          column: a
          kind: fuzzy
`
	_, err := Parse("bad.yaml", []byte(doc))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeSchema, loadErr.Code)
}

// TestParse_NegativeMergeSpanAccepted verifies merge spans are not schema
// errors; the engine normalizes them at use time.
func TestParse_NegativeMergeSpanAccepted(t *testing.T) {
	doc := `
title: Spans
widgets:
  - kind: table
    table:
      columns:
        - id: a
      rows:
        - id: 1
          cells: {a: x}
          merges:
            a: {colspan: -2}
`
	m, err := Parse("spans.yaml", []byte(doc))
	require.NoError(t, err)
	rows := m.Widgets[0].Table.GridRows()
	assert.Equal(t, -2, rows[0].Merges["a"].Colspan)
}

// TestParse_MalformedYAML surfaces a parse error, not a panic.
func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("bad.yaml", []byte("title: [unclosed"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeYAMLParse, loadErr.Code)
}

// TestLoad_MissingFile returns a coded not-found error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

// TestFindMockupFiles picks up .yaml and .yml, sorted, ignoring the rest.
func TestFindMockupFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := FindMockupFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.yml"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.yaml"), files[1])
}
