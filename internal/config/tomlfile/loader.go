/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package tomlfile reads TOML configuration files and merges them into a single
// context mapping. Files that do not exist are skipped.
package tomlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Loader reads TOML files relative to a base directory
type Loader struct {
	dir      string
	readFile func(name string) ([]byte, error)
}

// NewLoader creates a loader resolving relative paths against dir.
// An empty dir means the current working directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:      dir,
		readFile: os.ReadFile,
	}
}

// Result is the outcome of loading a list of candidate files
type Result struct {
	Values map[string]any
	Loaded []string
	Missed []string
}

// Load reads every existing file in order and merges the top-level keys,
// later files overwriting earlier ones
func (l *Loader) Load(paths ...string) (*Result, error) {
	result := &Result{Values: make(map[string]any)}

	for _, p := range paths {
		path := l.resolve(p)

		values, err := l.LoadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				result.Missed = append(result.Missed, path)
				continue
			}
			return nil, err
		}

		maps.Copy(result.Values, values)
		result.Loaded = append(result.Loaded, path)
	}

	return result, nil
}

// LoadFile reads and parses a single TOML file. A missing file is reported as
// an error matching fs.ErrNotExist.
func (l *Loader) LoadFile(path string) (map[string]any, error) {
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if _, err := toml.Decode(string(data), &values); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
	}
	return values, nil
}

func (l *Loader) resolve(path string) string {
	if l.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.dir, path)
}

// Merge copies the top-level keys of src over dst and returns dst.
// A nil dst is allocated.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
