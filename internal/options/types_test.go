/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Clone_IsDeep(t *testing.T) {
	original := Options{
		DeploymentName: "test",
		Stacks: []StackInfo{
			{ID: "app", DependsOn: []string{"network"}},
		},
		Environment: Environment{Name: "dev", Account: "123456789012"},
		Context: map[string]any{
			"config2": map[string]any{"subconfig1": "subvalue1"},
		},
		Tags: map[string]string{"Environment": "dev"},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Stacks[0].Name = "changed"
	clone.Stacks[0].DependsOn[0] = "changed"
	clone.Context["config2"].(map[string]any)["subconfig1"] = "changed"
	clone.Tags["Environment"] = "changed"
	clone.Environment.Account = "changed"

	assert.Equal(t, "", original.Stacks[0].Name)
	assert.Equal(t, "network", original.Stacks[0].DependsOn[0])
	assert.Equal(t, "subvalue1", original.Context["config2"].(map[string]any)["subconfig1"])
	assert.Equal(t, "dev", original.Tags["Environment"])
	assert.Equal(t, "123456789012", original.Environment.Account)
}

func TestOptions_Clone_KeepsNilCollections(t *testing.T) {
	clone := Options{DeploymentName: "test"}.Clone()

	assert.Nil(t, clone.Stacks)
	assert.Nil(t, clone.Context)
	assert.Nil(t, clone.Tags)
}

func TestOptions_StackLookup(t *testing.T) {
	opts := NewTestOptions("test", "a", "b")

	assert.Equal(t, []string{"a", "b"}, opts.StackIDs())

	stack, ok := opts.Stack("b")
	assert.True(t, ok)
	assert.Equal(t, "b", stack.ID)

	_, ok = opts.Stack("c")
	assert.False(t, ok)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name: "valid without stacks",
			opts: Options{DeploymentName: "test"},
		},
		{
			name: "valid with stacks",
			opts: NewTestOptions("test", "a", "b"),
		},
		{
			name:    "missing deployment name",
			opts:    Options{Stacks: []StackInfo{{ID: "a"}}},
			wantErr: ErrMissingDeploymentName,
		},
		{
			name:    "missing stack id",
			opts:    Options{DeploymentName: "test", Stacks: []StackInfo{{Name: "named"}}},
			wantErr: ErrMissingStackID,
		},
		{
			name:    "duplicate stack id",
			opts:    NewTestOptions("test", "a", "b", "a"),
			wantErr: ErrDuplicateStackID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions_ValidateRequired_IgnoresStacks(t *testing.T) {
	opts := NewTestOptions("test", "a", "a")

	assert.NoError(t, opts.ValidateRequired())
	assert.ErrorIs(t, Options{}.ValidateRequired(), ErrMissingDeploymentName)
}
