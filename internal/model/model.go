/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package model builds the runtime model (app, stacks and environment) from
// processed options by driving a provisioning toolkit.
package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/orien/simplecdk/internal/logging"
	"github.com/orien/simplecdk/internal/options"
	"github.com/orien/simplecdk/internal/toolkit"
	"go.uber.org/zap"
)

// CurrentEnvironment pairs the environment name with the toolkit environment
type CurrentEnvironment struct {
	Name string
	Env  toolkit.Environment
}

// Model is the resolved construct tree. It is read-only once built.
type Model struct {
	DeploymentName     string
	App                toolkit.App
	Stacks             map[string]toolkit.Stack
	StackOrder         []string
	CurrentEnvironment CurrentEnvironment

	// Options are the processed options the model was built from
	Options options.Options

	toolkit toolkit.Toolkit
}

// Stack returns the stack with the given id
func (m *Model) Stack(id string) (toolkit.Stack, bool) {
	stack, ok := m.Stacks[id]
	return stack, ok
}

// OrderedStacks returns the stacks in the order they were declared
func (m *Model) OrderedStacks() []toolkit.Stack {
	stacks := make([]toolkit.Stack, 0, len(m.StackOrder))
	for _, id := range m.StackOrder {
		stacks = append(stacks, m.Stacks[id])
	}
	return stacks
}

// AddNamespace creates a child scope under scope for grouping resources
func (m *Model) AddNamespace(scope toolkit.Scope, name string) (toolkit.Scope, error) {
	ns, err := m.toolkit.AddNamespace(scope, name)
	if err != nil {
		return nil, fmt.Errorf("failed to add namespace '%s': %w", name, err)
	}
	return ns, nil
}

// Builder turns options into a Model
type Builder struct {
	toolkit    toolkit.Toolkit
	processors []options.Processor
	logger     *zap.Logger
}

// NewBuilder creates a builder using the default option processors
func NewBuilder(tk toolkit.Toolkit) *Builder {
	return &Builder{
		toolkit:    tk,
		processors: options.DefaultProcessors(),
	}
}

// SetProcessors replaces the option processors. Calling it with no arguments
// disables processing.
func (b *Builder) SetProcessors(processors ...options.Processor) {
	b.processors = processors
}

// SetLogger allows injecting a logger (for testing)
func (b *Builder) SetLogger(logger *zap.Logger) {
	b.logger = logger
}

// Build applies the option processors in order and creates the app, the
// environment and one stack per stack descriptor
func (b *Builder) Build(opts options.Options) (*Model, error) {
	if err := opts.ValidateRequired(); err != nil {
		return nil, err
	}

	opts, err := options.Apply(opts, b.processors...)
	if err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	b.log().Debug("building model",
		zap.String("deployment_name", opts.DeploymentName),
		zap.Any("environment", opts.Environment),
		zap.Strings("stacks", opts.StackIDs()),
		zap.Any("tags", opts.Tags))

	env := b.toolkit.NewEnvironment(opts.Environment.Account, opts.Environment.Region)

	app, err := b.toolkit.NewApp(opts.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	m := &Model{
		DeploymentName: opts.DeploymentName,
		App:            app,
		Stacks:         make(map[string]toolkit.Stack, len(opts.Stacks)),
		StackOrder:     make([]string, 0, len(opts.Stacks)),
		CurrentEnvironment: CurrentEnvironment{
			Name: opts.Environment.Name,
			Env:  env,
		},
		Options: opts,
		toolkit: b.toolkit,
	}

	tagKeys := slices.Sorted(maps.Keys(opts.Tags))
	for _, info := range opts.Stacks {
		name := info.Name
		if name == "" {
			name = info.ID
		}

		stack, err := b.toolkit.NewStack(app, info.ID, name, env)
		if err != nil {
			return nil, fmt.Errorf("failed to create stack '%s': %w", info.ID, err)
		}

		for _, key := range tagKeys {
			if err := b.toolkit.Tag(stack, key, opts.Tags[key]); err != nil {
				return nil, fmt.Errorf("failed to tag stack '%s' with '%s': %w", info.ID, key, err)
			}
		}

		m.Stacks[info.ID] = stack
		m.StackOrder = append(m.StackOrder, info.ID)
	}

	return m, nil
}

func (b *Builder) log() *zap.Logger {
	if b.logger != nil {
		return b.logger
	}
	return logging.Logger()
}

// Init builds a model from opts. A nil processors slice selects the default
// processors; an empty, non-nil slice applies none.
func Init(tk toolkit.Toolkit, opts options.Options, processors []options.Processor) (*Model, error) {
	b := NewBuilder(tk)
	if processors != nil {
		b.SetProcessors(processors...)
	}
	return b.Build(opts)
}

// Generate synthesizes the deployment artifacts for the model
func Generate(m *Model) error {
	if m == nil || m.toolkit == nil {
		return fmt.Errorf("model was not built by a Builder")
	}
	if err := m.toolkit.Synth(m.App); err != nil {
		return fmt.Errorf("failed to generate deployment '%s': %w", m.DeploymentName, err)
	}
	return nil
}
