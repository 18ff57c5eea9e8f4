/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package options

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEnvironmentSource implements EnvironmentSource for testing
type MockEnvironmentSource struct {
	mock.Mock
}

func (m *MockEnvironmentSource) DefaultAccount(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockEnvironmentSource) DefaultRegion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// NewTestOptions creates Options with the given deployment name and stack ids
func NewTestOptions(deploymentName string, stackIDs ...string) Options {
	opts := Options{DeploymentName: deploymentName}
	for _, id := range stackIDs {
		opts.Stacks = append(opts.Stacks, StackInfo{ID: id})
	}
	return opts
}
