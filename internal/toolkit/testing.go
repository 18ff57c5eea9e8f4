/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package toolkit

import (
	"github.com/stretchr/testify/mock"
)

// MockToolkit implements Toolkit for testing
type MockToolkit struct {
	mock.Mock
}

func (m *MockToolkit) NewEnvironment(account, region string) Environment {
	args := m.Called(account, region)
	return args.Get(0).(Environment)
}

func (m *MockToolkit) NewApp(context map[string]any) (App, error) {
	args := m.Called(context)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(App), args.Error(1)
}

func (m *MockToolkit) NewStack(app App, id, name string, env Environment) (Stack, error) {
	args := m.Called(app, id, name, env)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Stack), args.Error(1)
}

func (m *MockToolkit) Tag(stack Stack, key, value string) error {
	args := m.Called(stack, key, value)
	return args.Error(0)
}

func (m *MockToolkit) AddNamespace(scope Scope, name string) (Scope, error) {
	args := m.Called(scope, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Scope), args.Error(1)
}

func (m *MockToolkit) Synth(app App) error {
	args := m.Called(app)
	return args.Error(0)
}

// StaticEnvironment is a fixed Environment value
type StaticEnvironment struct {
	AccountID  string
	RegionName string
}

func (e StaticEnvironment) Account() string { return e.AccountID }
func (e StaticEnvironment) Region() string  { return e.RegionName }

// StaticScope answers context lookups from a map
type StaticScope map[string]any

func (s StaticScope) TryGetContext(key string) any {
	return s[key]
}

// StaticStack is a Stack with fixed values
type StaticStack struct {
	StaticScope
	StackID string
	Name    string
	Env     StaticEnvironment
}

func (s *StaticStack) ID() string        { return s.StackID }
func (s *StaticStack) StackName() string { return s.Name }
func (s *StaticStack) Account() string   { return s.Env.AccountID }
func (s *StaticStack) Region() string    { return s.Env.RegionName }
