/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package tomlfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_MergesFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dev.toml", `
topic_name = "dev-topic"
retention = 1

[queue]
visibility = 30
`)
	writeFile(t, dir, "app.toml", `
topic_name = "app-topic"

[queue]
fifo = true
`)

	loader := NewLoader(dir)
	result, err := loader.Load("dev.toml", "app.toml")

	require.NoError(t, err)
	assert.Equal(t, "app-topic", result.Values["topic_name"], "later file should win")
	assert.Equal(t, int64(1), result.Values["retention"])

	// Top-level merge only: the second [queue] table replaces the first
	queue, ok := result.Values["queue"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, queue["fifo"])
	assert.NotContains(t, queue, "visibility")

	assert.Equal(t, []string{filepath.Join(dir, "dev.toml"), filepath.Join(dir, "app.toml")}, result.Loaded)
	assert.Empty(t, result.Missed)
}

func TestLoader_Load_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.toml", `name = "present"`)

	result, err := NewLoader(dir).Load("missing.toml", "app.toml", "also-missing.toml")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "present"}, result.Values)
	assert.Len(t, result.Loaded, 1)
	assert.Len(t, result.Missed, 2)
}

func TestLoader_Load_NoFiles(t *testing.T) {
	result, err := NewLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.NotNil(t, result.Values)
	assert.Empty(t, result.Values)
}

func TestLoader_Load_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.toml", `a = 1`)
	writeFile(t, dir, "bad.toml", `this is = = not toml`)

	result, err := NewLoader(dir).Load("good.toml", "bad.toml")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "bad.toml")
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_LoadFile_MissingFile(t *testing.T) {
	_, err := NewLoader("").LoadFile(filepath.Join(t.TempDir(), "nope.toml"))

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_ReadErrorIsReturned(t *testing.T) {
	loader := NewLoader("")
	loader.readFile = func(string) ([]byte, error) {
		return nil, fs.ErrPermission
	}

	_, err := loader.Load("locked.toml")

	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestLoader_AbsolutePathsIgnoreBaseDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "abs.toml", `k = "v"`)

	result, err := NewLoader("/does/not/matter").Load(path)

	require.NoError(t, err)
	assert.Equal(t, "v", result.Values["k"])
}

func TestMerge(t *testing.T) {
	t.Run("nil destination is allocated", func(t *testing.T) {
		got := Merge(nil, map[string]any{"a": 1})
		assert.Equal(t, map[string]any{"a": 1}, got)
	})

	t.Run("source overwrites keys", func(t *testing.T) {
		dst := map[string]any{"a": 1, "b": 2}
		got := Merge(dst, map[string]any{"b": 3})
		assert.Equal(t, map[string]any{"a": 1, "b": 3}, got)
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
