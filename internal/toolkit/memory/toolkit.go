/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package memory provides an in-process toolkit that records the construct
// tree it is asked to build. Synth writes a YAML manifest describing the
// stacks instead of CloudFormation templates.
package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/orien/simplecdk/internal/toolkit"
	"github.com/orien/simplecdk/internal/version"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the file written by Synth
const ManifestFile = "manifest.yaml"

// Ensure the in-memory types implement the toolkit interfaces
var (
	_ toolkit.Toolkit     = (*Toolkit)(nil)
	_ toolkit.App         = (*App)(nil)
	_ toolkit.Stack       = (*Stack)(nil)
	_ toolkit.Scope       = (*Namespace)(nil)
	_ toolkit.Environment = Environment{}
)

// Toolkit records construct trees in memory
type Toolkit struct {
	outdir string
}

// New creates an in-memory toolkit. Synth writes to outdir; an empty outdir
// makes Synth a no-op apart from marking the app synthesized.
func New(outdir string) *Toolkit {
	return &Toolkit{outdir: outdir}
}

// Environment is a recorded account and region
type Environment struct {
	account string
	region  string
}

func (e Environment) Account() string { return e.account }
func (e Environment) Region() string  { return e.region }

type node struct {
	id       string
	parent   *node
	context  map[string]any
	children map[string]*node
}

func newNode(parent *node, id string) *node {
	n := &node{id: id, parent: parent, children: make(map[string]*node)}
	if parent != nil {
		parent.children[id] = n
	}
	return n
}

// TryGetContext looks the key up on this node and then on its ancestors
func (n *node) TryGetContext(key string) any {
	for cur := n; cur != nil; cur = cur.parent {
		if value, ok := cur.context[key]; ok {
			return value
		}
	}
	return nil
}

func (n *node) addChild(id string) (*node, error) {
	if id == "" {
		return nil, fmt.Errorf("construct id cannot be empty")
	}
	if _, exists := n.children[id]; exists {
		return nil, fmt.Errorf("there is already a construct with id '%s' in '%s'", id, n.path())
	}
	return newNode(n, id), nil
}

func (n *node) path() string {
	if n.parent == nil {
		return n.id
	}
	return n.parent.path() + "/" + n.id
}

// App is a recorded application
type App struct {
	*node
	stacks      []*Stack
	synthesized bool
}

// Stacks returns the stacks created under the app in creation order
func (a *App) Stacks() []*Stack {
	return a.stacks
}

// Synthesized reports whether Synth has been called
func (a *App) Synthesized() bool {
	return a.synthesized
}

// Stack is a recorded stack
type Stack struct {
	*node
	name string
	env  Environment
	tags map[string]string
}

func (s *Stack) ID() string        { return s.id }
func (s *Stack) StackName() string { return s.name }
func (s *Stack) Account() string   { return s.env.account }
func (s *Stack) Region() string    { return s.env.region }

// Tags returns a copy of the tags applied to the stack
func (s *Stack) Tags() map[string]string {
	tags := make(map[string]string, len(s.tags))
	for k, v := range s.tags {
		tags[k] = v
	}
	return tags
}

// Namespace is a grouping scope below a stack or another namespace
type Namespace struct {
	*node
}

// NewEnvironment records the account and region
func (t *Toolkit) NewEnvironment(account, region string) toolkit.Environment {
	return Environment{account: account, region: region}
}

// NewApp creates an app whose context is a copy of ctx
func (t *Toolkit) NewApp(ctx map[string]any) (toolkit.App, error) {
	root := newNode(nil, "")
	root.context = make(map[string]any, len(ctx))
	for k, v := range ctx {
		root.context[k] = v
	}
	return &App{node: root}, nil
}

// NewStack creates a stack under app
func (t *Toolkit) NewStack(app toolkit.App, id, name string, env toolkit.Environment) (toolkit.Stack, error) {
	a, ok := app.(*App)
	if !ok {
		return nil, fmt.Errorf("app of type %T was not created by the memory toolkit", app)
	}

	n, err := a.addChild(id)
	if err != nil {
		return nil, err
	}

	stack := &Stack{
		node: n,
		name: name,
		tags: make(map[string]string),
	}
	if env != nil {
		stack.env = Environment{account: env.Account(), region: env.Region()}
	}
	a.stacks = append(a.stacks, stack)
	return stack, nil
}

// Tag records a tag on the stack
func (t *Toolkit) Tag(stack toolkit.Stack, key, value string) error {
	s, ok := stack.(*Stack)
	if !ok {
		return fmt.Errorf("stack of type %T was not created by the memory toolkit", stack)
	}
	s.tags[key] = value
	return nil
}

// AddNamespace creates a child scope
func (t *Toolkit) AddNamespace(scope toolkit.Scope, name string) (toolkit.Scope, error) {
	var parent *node
	switch s := scope.(type) {
	case *App:
		parent = s.node
	case *Stack:
		parent = s.node
	case *Namespace:
		parent = s.node
	default:
		return nil, fmt.Errorf("scope of type %T was not created by the memory toolkit", scope)
	}

	n, err := parent.addChild(name)
	if err != nil {
		return nil, err
	}
	return &Namespace{node: n}, nil
}

// Synth marks the app synthesized and writes its manifest
func (t *Toolkit) Synth(app toolkit.App) error {
	a, ok := app.(*App)
	if !ok {
		return fmt.Errorf("app of type %T was not created by the memory toolkit", app)
	}

	a.synthesized = true
	if t.outdir == "" {
		return nil
	}

	data, err := yaml.Marshal(a.Manifest())
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.MkdirAll(t.outdir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", t.outdir, err)
	}

	path := filepath.Join(t.outdir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest '%s': %w", path, err)
	}
	return nil
}

// Manifest describes a synthesized app
type Manifest struct {
	Generator string          `yaml:"generator"`
	Context   map[string]any  `yaml:"context,omitempty"`
	Stacks    []StackManifest `yaml:"stacks"`
}

// StackManifest describes one stack in a Manifest
type StackManifest struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Account    string            `yaml:"account,omitempty"`
	Region     string            `yaml:"region,omitempty"`
	Tags       map[string]string `yaml:"tags,omitempty"`
	Namespaces []string          `yaml:"namespaces,omitempty"`
}

// Manifest returns the description written by Synth
func (a *App) Manifest() Manifest {
	m := Manifest{Generator: version.Generator(), Context: a.context, Stacks: make([]StackManifest, 0, len(a.stacks))}
	for _, s := range a.stacks {
		var namespaces []string
		for id := range s.children {
			namespaces = append(namespaces, id)
		}
		sort.Strings(namespaces)

		m.Stacks = append(m.Stacks, StackManifest{
			ID:         s.id,
			Name:       s.name,
			Account:    s.env.account,
			Region:     s.env.region,
			Tags:       s.Tags(),
			Namespaces: namespaces,
		})
	}
	return m
}
