/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/orien/simplecdk/internal/aws"
	"github.com/orien/simplecdk/internal/logging"
	"github.com/orien/simplecdk/internal/model"
	"go.uber.org/zap"
)

// StackReporter implements Reporter using AWS CloudFormation operations
type StackReporter struct {
	clientFactory aws.ClientFactory
}

// NewStackReporter creates a new reporter with the provided client factory
func NewStackReporter(clientFactory aws.ClientFactory) Reporter {
	return &StackReporter{
		clientFactory: clientFactory,
	}
}

// Report looks up every model stack, in declaration order, in the region it
// targets. Stacks without a region use the region of the model environment.
func (r *StackReporter) Report(ctx context.Context, m *model.Model) ([]*StackStatus, error) {
	defaultRegion := ""
	if m.CurrentEnvironment.Env != nil {
		defaultRegion = m.CurrentEnvironment.Env.Region()
	}

	statuses := make([]*StackStatus, 0, len(m.StackOrder))
	for _, stack := range m.OrderedStacks() {
		region := stack.Region()
		if region == "" {
			region = defaultRegion
		}

		cfOps, err := r.clientFactory.GetCloudFormationOperations(ctx, region)
		if err != nil {
			return nil, fmt.Errorf("failed to get CloudFormation operations for region %s: %w", region, err)
		}

		result := &StackStatus{
			ID:     stack.ID(),
			Name:   stack.StackName(),
			Region: region,
		}

		deployed, err := cfOps.GetStack(ctx, stack.StackName())
		switch {
		case errors.Is(err, aws.ErrStackNotFound):
			result.Status = NotDeployed
		case err != nil:
			return nil, fmt.Errorf("failed to get status of stack '%s': %w", stack.ID(), err)
		default:
			result.Deployed = true
			result.Status = string(deployed.Status)
			result.UpdatedTime = deployed.UpdatedTime
			if result.UpdatedTime == nil {
				result.UpdatedTime = deployed.CreatedTime
			}
			result.Outputs = deployed.Outputs
		}

		logging.Logger().Debug("stack status",
			zap.String("stack", result.ID),
			zap.String("name", result.Name),
			zap.String("region", result.Region),
			zap.String("status", result.Status))
		statuses = append(statuses, result)
	}

	return statuses, nil
}
