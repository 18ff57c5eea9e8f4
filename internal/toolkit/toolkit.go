/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package toolkit defines the provisioning toolkit the model builder drives.
// Implementations create the application, stacks and environment objects and
// synthesize the result; this module never constructs infrastructure itself.
package toolkit

// Scope is a node in the construct tree that can answer context lookups
type Scope interface {
	// TryGetContext returns the context value for key, or nil when absent
	TryGetContext(key string) any
}

// App is the root of a construct tree
type App interface {
	Scope
}

// Stack is a deployable unit created under an App
type Stack interface {
	Scope
	ID() string
	StackName() string
	Account() string
	Region() string
}

// Environment is the account and region stacks are deployed to.
// Empty values mean the toolkit decides.
type Environment interface {
	Account() string
	Region() string
}

// Toolkit creates and synthesizes construct trees
type Toolkit interface {
	// NewEnvironment creates an environment; empty values are left unset
	NewEnvironment(account, region string) Environment

	// NewApp creates an application seeded with the given context
	NewApp(context map[string]any) (App, error)

	// NewStack creates a stack under app
	NewStack(app App, id, name string, env Environment) (Stack, error)

	// Tag applies a tag to a stack and everything in it
	Tag(stack Stack, key, value string) error

	// AddNamespace creates a child scope used to group resources
	AddNamespace(scope Scope, name string) (Scope, error)

	// Synth generates the deployment artifacts for app
	Synth(app App) error
}
