/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package options defines the options record handed to the model builder and
// the processors that enrich it before the model is built.
//
// Options is a value type. Processors never modify the record they receive;
// they work on a deep copy obtained from Clone and return it.
package options

import (
	"errors"
	"fmt"

	"github.com/mitchellh/copystructure"
)

// DefaultStackID is the id given to the stack synthesized when no stacks are listed
const DefaultStackID = "default"

var (
	// ErrMissingDeploymentName is returned when an Options has no deployment name
	ErrMissingDeploymentName = errors.New("deployment name is required")

	// ErrMissingStackID is returned when a stack descriptor has no id
	ErrMissingStackID = errors.New("stack id is required")

	// ErrDuplicateStackID is returned when two stack descriptors share an id
	ErrDuplicateStackID = errors.New("duplicate stack id")
)

// Options holds the caller-supplied settings used to build a model.
// Only DeploymentName is required.
type Options struct {
	DeploymentName string            `yaml:"deployment_name" json:"deploymentName"`
	Stacks         []StackInfo       `yaml:"stacks,omitempty" json:"stacks,omitempty"`
	Environment    Environment       `yaml:"environment,omitempty" json:"environment"`
	Context        map[string]any    `yaml:"context,omitempty" json:"context,omitempty"`
	Tags           map[string]string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// StackInfo describes one stack to create. An empty Name means the name is
// derived by SetStackNames.
type StackInfo struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name,omitempty" json:"name,omitempty"`
	DependsOn []string `yaml:"depends_on,omitempty" json:"dependsOn,omitempty"`
}

// Environment names the target environment and its AWS account and region.
// Empty Account or Region means "not set".
type Environment struct {
	Name    string `yaml:"name,omitempty" json:"name"`
	Account string `yaml:"account,omitempty" json:"account,omitempty"`
	Region  string `yaml:"region,omitempty" json:"region,omitempty"`
}

// Clone returns a deep copy of the options
func (o Options) Clone() Options {
	return copystructure.Must(copystructure.Copy(o)).(Options)
}

// StackIDs returns the stack ids in declaration order
func (o Options) StackIDs() []string {
	ids := make([]string, 0, len(o.Stacks))
	for _, stack := range o.Stacks {
		ids = append(ids, stack.ID)
	}
	return ids
}

// Stack returns the descriptor with the given id
func (o Options) Stack(id string) (StackInfo, bool) {
	for _, stack := range o.Stacks {
		if stack.ID == id {
			return stack, true
		}
	}
	return StackInfo{}, false
}

// ValidateRequired checks the fields that must be present before any processing
func (o Options) ValidateRequired() error {
	if o.DeploymentName == "" {
		return ErrMissingDeploymentName
	}
	return nil
}

// Validate checks the options for consistency
func (o Options) Validate() error {
	if err := o.ValidateRequired(); err != nil {
		return err
	}

	seen := make(map[string]int, len(o.Stacks))
	for i, stack := range o.Stacks {
		if stack.ID == "" {
			return fmt.Errorf("stack at position %d: %w", i, ErrMissingStackID)
		}
		if first, exists := seen[stack.ID]; exists {
			return fmt.Errorf("%w '%s' at positions %d and %d", ErrDuplicateStackID, stack.ID, first, i)
		}
		seen[stack.ID] = i
	}

	return nil
}
