/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"testing"

	"github.com/orien/simplecdk/internal/options"
	"github.com/orien/simplecdk/internal/toolkit"
	"github.com/orien/simplecdk/internal/toolkit/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContextData(t *testing.T) {
	clearCDKEnv(t)

	m, err := Init(memory.New(""), options.Options{
		DeploymentName: "test",
		Context: map[string]any{
			"config1": "value1",
			"config2": map[string]any{
				"subconfig1": "subvalue1",
			},
		},
	}, nil)
	require.NoError(t, err)

	stack := m.Stacks["default"]
	assert.Equal(t, "value1", GetContextData(stack, "config1"))
	assert.Equal(t, "subvalue1", GetContextData(stack, "config2", "subconfig1"))
	assert.Nil(t, GetContextData(stack, "config3"))
}

func TestGetContextData_Paths(t *testing.T) {
	scope := toolkit.StaticScope{
		"config2": map[string]any{
			"subconfig1": "subvalue1",
			"nested":     map[string]any{"deep": 42},
		},
		"labels": map[string]string{"team": "core"},
		"scalar": "text",
	}

	tests := []struct {
		name string
		keys []string
		want any
	}{
		{name: "nested value", keys: []string{"config2", "subconfig1"}, want: "subvalue1"},
		{name: "two levels", keys: []string{"config2", "nested", "deep"}, want: 42},
		{name: "whole map", keys: []string{"config2", "nested"}, want: map[string]any{"deep": 42}},
		{name: "string map", keys: []string{"labels", "team"}, want: "core"},
		{name: "missing string map key", keys: []string{"labels", "owner"}, want: nil},
		{name: "missing top level", keys: []string{"config3"}, want: nil},
		{name: "missing top level with path", keys: []string{"config3", "subconfig1"}, want: nil},
		{name: "missing intermediate", keys: []string{"config2", "missing", "deep"}, want: nil},
		{name: "path through scalar", keys: []string{"scalar", "x"}, want: nil},
		{name: "no keys", keys: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetContextData(scope, tt.keys...))
		})
	}
}

func TestGetContextData_NilScope(t *testing.T) {
	assert.Nil(t, GetContextData(nil, "key"))
}
