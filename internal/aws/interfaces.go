/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/orien/simplecdk/internal/options"
)

// CloudFormationClient defines the CloudFormation client calls used here.
// This allows for easier testing with mock implementations
type CloudFormationClient interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	ListStacks(ctx context.Context, params *cloudformation.ListStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListStacksOutput, error)
}

// STSClient defines the STS client calls used to discover the caller account
type STSClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Ensure that the actual AWS clients implement our interfaces
var (
	_ CloudFormationClient = (*cloudformation.Client)(nil)
	_ STSClient            = (*sts.Client)(nil)
)

// Ensure that the default implementations satisfy their interfaces
var (
	_ CloudFormationOperations  = (*DefaultCloudFormationOperations)(nil)
	_ ClientFactory             = (*DefaultClientFactory)(nil)
	_ options.EnvironmentSource = (*EnvironmentSource)(nil)
)

// CloudFormationOperations defines the read-only stack queries
type CloudFormationOperations interface {
	GetStack(ctx context.Context, stackName string) (*Stack, error)
	StackExists(ctx context.Context, stackName string) (bool, error)
	ListStacks(ctx context.Context) ([]*Stack, error)
}
