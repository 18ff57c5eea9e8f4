/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"github.com/orien/simplecdk/internal/toolkit"
)

// GetContextData returns the context value at the given key path, or nil if
// any key along the path is missing. A single key is a plain context lookup.
func GetContextData(scope toolkit.Scope, keys ...string) any {
	if scope == nil || len(keys) == 0 {
		return nil
	}

	value := scope.TryGetContext(keys[0])
	for _, key := range keys[1:] {
		if value == nil {
			return nil
		}
		value = lookup(value, key)
	}
	return value
}

func lookup(value any, key string) any {
	switch m := value.(type) {
	case map[string]any:
		return m[key]
	case map[string]string:
		if v, ok := m[key]; ok {
			return v
		}
		return nil
	default:
		return nil
	}
}
