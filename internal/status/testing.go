/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"context"

	"github.com/orien/simplecdk/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockReporter implements Reporter for testing
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Report(ctx context.Context, mdl *model.Model) ([]*StackStatus, error) {
	args := m.Called(ctx, mdl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*StackStatus), args.Error(1)
}
