package runner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nblint/pkg/lint"
	_ "github.com/yaklabco/nblint/pkg/lint/rules" // Register built-in rules
)

const cleanNotebook = `{
  "cells": [
    {"cell_type": "markdown", "metadata": {}, "source": ["# Clean\n"]},
    {"cell_type": "code", "execution_count": 1, "metadata": {}, "outputs": [], "source": ["x = 1\n"]}
  ],
  "metadata": {},
  "nbformat": 4,
  "nbformat_minor": 5
}`

const dirtyNotebook = `{
  "cells": [
    {"cell_type": "code", "execution_count": null, "metadata": {}, "outputs": [], "source": []}
  ],
  "metadata": {},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func newTestRunner() *Runner {
	return New(lint.NewEngine(lint.DefaultRegistry))
}

func TestRunCleanNotebook(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clean.ipynb"), cleanNotebook)

	result, err := newTestRunner().Run(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	assert.False(t, result.Documents[0].Failed())
	assert.False(t, result.HasFailures())
	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 0, result.Stats.FindingsTotal)
}

func TestRunDirtyNotebook(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Untitled.ipynb"), dirtyNotebook)

	result, err := newTestRunner().Run(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	outcome := result.Documents[0]
	assert.True(t, outcome.Failed())

	// Every built-in rule fails for an untouched default notebook.
	require.Len(t, outcome.Results, 4)
	for _, r := range outcome.Results {
		assert.False(t, r.Passed(), "rule %s should fail", r.RuleName)
	}

	assert.True(t, result.HasFailures())
	assert.Equal(t, 1, result.Stats.FilesWithFindings)
	assert.Equal(t, 4, result.Stats.FindingsTotal)
	assert.Equal(t, 1, result.Stats.FindingsByRule["no-empty-cells"])
}

func TestRunDisabledRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Untitled.ipynb"), dirtyNotebook)

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Disabled:   map[string]bool{"NB001": true, "NB004": true},
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 1)
	require.Len(t, result.Documents[0].Results, 2)
	assert.Equal(t, "NB002", result.Documents[0].Results[0].RuleID)
	assert.Equal(t, "NB003", result.Documents[0].Results[1].RuleID)
}

func TestRunParseErrorAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.ipynb"), "not json at all")

	_, err := newTestRunner().Run(context.Background(), Options{WorkingDir: dir})
	require.Error(t, err)
	assert.True(t, IsParseFailure(err))
}

func TestRunParseErrorKeepGoing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.ipynb"), "not json at all")
	writeFile(t, filepath.Join(dir, "clean.ipynb"), cleanNotebook)

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		KeepGoing:  true,
	})
	require.NoError(t, err)

	require.Len(t, result.Documents, 2)
	assert.Error(t, result.Documents[0].Err)
	assert.NoError(t, result.Documents[1].Err)
	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
}

func TestRunDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.ipynb", "a.ipynb", "b.ipynb"} {
		writeFile(t, filepath.Join(dir, name), cleanNotebook)
	}

	result, err := newTestRunner().Run(context.Background(), Options{
		WorkingDir: dir,
		Jobs:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.ipynb", "b.ipynb", "c.ipynb"},
		relPaths(t, dir, []string{
			result.Documents[0].Path,
			result.Documents[1].Path,
			result.Documents[2].Path,
		}))
}

func TestRunEmptyDirectory(t *testing.T) {
	result, err := newTestRunner().Run(context.Background(), Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.False(t, result.HasFailures())
}
