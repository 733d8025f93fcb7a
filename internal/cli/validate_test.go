package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
title: Demo
widgets:
  - kind: table
    id: t
    table:
      columns:
        - id: name
      rows:
        - id: 1
          cells: {name: ann}
`

const invalidDoc = `
title: Demo
widgets:
  - kind: spinner
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns stdout plus the
// error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// TestValidate_ValidFile exits 0 and reports success.
func TestValidate_ValidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.yaml", validDoc)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 file(s) valid")
}

// TestValidate_InvalidFileFails exits 1 with the schema violation listed.
func TestValidate_InvalidFileFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", invalidDoc)

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "SCHEMA_VIOLATION")
}

// TestValidate_DirectoryChecksEveryFile validates all files before
// reporting.
func TestValidate_DirectoryChecksEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", validDoc)
	writeFile(t, dir, "b.yaml", invalidDoc)

	out, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 file(s) invalid")
	assert.Contains(t, out, "b.yaml")
}

// TestValidate_MissingPathIsCommandError exits 2.
func TestValidate_MissingPathIsCommandError(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestValidate_JSONOutput emits the standard CLI response envelope.
func TestValidate_JSONOutput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.yaml", validDoc)

	out, err := execute(t, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

// TestRoot_RejectsUnknownFormat verifies the persistent flag check.
func TestRoot_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "validate", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

// TestRender_WritesHTML renders a mockup to stdout.
func TestRender_WritesHTML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.yaml", validDoc)

	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `data-grid="t"`)
	assert.Contains(t, out, "ann")
}

// TestRender_OutputFlag writes the HTML to a file.
func TestRender_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.yaml", validDoc)
	outPath := filepath.Join(dir, "out.html")

	_, err := execute(t, "render", path, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

// TestRender_InvalidMockupFails exits 1.
func TestRender_InvalidMockupFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", invalidDoc)

	_, err := execute(t, "render", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
