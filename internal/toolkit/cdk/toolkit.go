/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package cdk implements the toolkit on top of the AWS CDK for Go.
//
// Programs using it must call Close (or jsii.Close) before exiting:
//
//	tk := cdk.New(cdk.Config{Outdir: "cdk.out"})
//	defer cdk.Close()
package cdk

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/orien/simplecdk/internal/toolkit"
)

// Ensure that the adapters implement the toolkit interfaces
var (
	_ toolkit.Toolkit     = (*Toolkit)(nil)
	_ toolkit.App         = (*App)(nil)
	_ toolkit.Stack       = (*Stack)(nil)
	_ toolkit.Scope       = (*Scope)(nil)
	_ toolkit.Environment = (*Environment)(nil)
)

// Config holds settings for the CDK toolkit
type Config struct {
	// Outdir is where the cloud assembly is written. Empty uses the CDK
	// default (CDK_OUTDIR or a temporary directory).
	Outdir string
}

// Toolkit drives the AWS CDK
type Toolkit struct {
	config Config
}

// New creates a CDK toolkit
func New(cfg Config) *Toolkit {
	return &Toolkit{config: cfg}
}

// Close shuts down the jsii runtime
func Close() {
	jsii.Close()
}

// Environment wraps a CDK environment
type Environment struct {
	env *awscdk.Environment
}

// Account returns the target account, or "" when the CDK resolves it
func (e *Environment) Account() string { return deref(e.env.Account) }

// Region returns the target region, or "" when the CDK resolves it
func (e *Environment) Region() string { return deref(e.env.Region) }

// CDK returns the wrapped environment
func (e *Environment) CDK() *awscdk.Environment { return e.env }

// App wraps a CDK app
type App struct {
	app awscdk.App
}

// TryGetContext returns the app context value for key, or nil
func (a *App) TryGetContext(key string) any {
	return a.app.Node().TryGetContext(jsii.String(key))
}

// CDK returns the wrapped app
func (a *App) CDK() awscdk.App { return a.app }

// Stack wraps a CDK stack
type Stack struct {
	id    string
	stack awscdk.Stack
}

// ID returns the construct id the stack was created with
func (s *Stack) ID() string { return s.id }

// StackName returns the CloudFormation stack name
func (s *Stack) StackName() string { return deref(s.stack.StackName()) }

// Account returns the stack account, which may be an unresolved token
func (s *Stack) Account() string { return deref(s.stack.Account()) }

// Region returns the stack region, which may be an unresolved token
func (s *Stack) Region() string { return deref(s.stack.Region()) }

// TryGetContext returns the context value visible to the stack, or nil
func (s *Stack) TryGetContext(key string) any {
	return s.stack.Node().TryGetContext(jsii.String(key))
}

// CDK returns the wrapped stack, for adding resources
func (s *Stack) CDK() awscdk.Stack { return s.stack }

// Scope wraps a plain construct used as a namespace
type Scope struct {
	construct constructs.Construct
}

// TryGetContext returns the context value visible to the namespace, or nil
func (s *Scope) TryGetContext(key string) any {
	return s.construct.Node().TryGetContext(jsii.String(key))
}

// CDK returns the wrapped construct
func (s *Scope) CDK() constructs.Construct { return s.construct }

// NewEnvironment creates a CDK environment, leaving empty values unset so the
// CDK resolves them at deploy time
func (t *Toolkit) NewEnvironment(account, region string) toolkit.Environment {
	return &Environment{env: &awscdk.Environment{
		Account: optionalString(account),
		Region:  optionalString(region),
	}}
}

// NewApp creates a CDK app with ctx as its initial context
func (t *Toolkit) NewApp(ctx map[string]any) (toolkit.App, error) {
	props := &awscdk.AppProps{
		Outdir: optionalString(t.config.Outdir),
	}
	if ctx != nil {
		values := make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			values[k] = v
		}
		props.Context = &values
	}

	var app awscdk.App
	if err := guard(func() { app = awscdk.NewApp(props) }); err != nil {
		return nil, fmt.Errorf("failed to create CDK app: %w", err)
	}
	return &App{app: app}, nil
}

// NewStack creates a CDK stack under app
func (t *Toolkit) NewStack(app toolkit.App, id, name string, env toolkit.Environment) (toolkit.Stack, error) {
	a, ok := app.(*App)
	if !ok {
		return nil, fmt.Errorf("app of type %T was not created by the CDK toolkit", app)
	}

	props := &awscdk.StackProps{
		StackName: optionalString(name),
		Env:       cdkEnvironment(env),
	}

	var stack awscdk.Stack
	if err := guard(func() { stack = awscdk.NewStack(a.app, jsii.String(id), props) }); err != nil {
		return nil, fmt.Errorf("failed to create stack '%s': %w", id, err)
	}
	return &Stack{id: id, stack: stack}, nil
}

// Tag applies a tag to the stack and all taggable resources in it
func (t *Toolkit) Tag(stack toolkit.Stack, key, value string) error {
	s, ok := stack.(*Stack)
	if !ok {
		return fmt.Errorf("stack of type %T was not created by the CDK toolkit", stack)
	}

	return guard(func() {
		awscdk.Tags_Of(s.stack).Add(jsii.String(key), jsii.String(value), nil)
	})
}

// AddNamespace creates a construct below scope for grouping resources
func (t *Toolkit) AddNamespace(scope toolkit.Scope, name string) (toolkit.Scope, error) {
	parent, err := construct(scope)
	if err != nil {
		return nil, err
	}

	var child constructs.Construct
	if err := guard(func() { child = constructs.NewConstruct(parent, jsii.String(name)) }); err != nil {
		return nil, fmt.Errorf("failed to create namespace '%s': %w", name, err)
	}
	return &Scope{construct: child}, nil
}

// Synth writes the cloud assembly for app
func (t *Toolkit) Synth(app toolkit.App) error {
	a, ok := app.(*App)
	if !ok {
		return fmt.Errorf("app of type %T was not created by the CDK toolkit", app)
	}

	if err := guard(func() { a.app.Synth(nil) }); err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}
	return nil
}

func construct(scope toolkit.Scope) (constructs.Construct, error) {
	switch s := scope.(type) {
	case *App:
		return s.app, nil
	case *Stack:
		return s.stack, nil
	case *Scope:
		return s.construct, nil
	default:
		return nil, fmt.Errorf("scope of type %T was not created by the CDK toolkit", scope)
	}
}

func cdkEnvironment(env toolkit.Environment) *awscdk.Environment {
	switch e := env.(type) {
	case nil:
		return nil
	case *Environment:
		return e.env
	default:
		return &awscdk.Environment{
			Account: optionalString(env.Account()),
			Region:  optionalString(env.Region()),
		}
	}
}

// optionalString maps "" to nil so the CDK treats the value as unset
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return jsii.String(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// guard converts a jsii panic into an error
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
