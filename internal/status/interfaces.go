/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"context"
	"time"

	"github.com/orien/simplecdk/internal/model"
)

// NotDeployed is reported for stacks that do not exist in CloudFormation
const NotDeployed = "NOT_DEPLOYED"

// Reporter defines the interface for retrieving the deployment status of model stacks
type Reporter interface {
	Report(ctx context.Context, m *model.Model) ([]*StackStatus, error)
}

// StackStatus describes the deployed state of one model stack
type StackStatus struct {
	ID       string
	Name     string
	Region   string
	Status   string
	Deployed bool

	UpdatedTime *time.Time
	Outputs     map[string]string
}
