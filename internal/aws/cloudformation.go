/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// ErrStackNotFound is returned when a stack has not been deployed
var ErrStackNotFound = errors.New("stack not found")

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress       StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete         StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed           StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress       StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete         StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed           StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress       StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete         StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed           StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackComplete StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusRollbackInProgress     StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete       StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed         StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress       StackStatus = "REVIEW_IN_PROGRESS"
)

// IsComplete reports whether no operation is running on the stack
func (s StackStatus) IsComplete() bool {
	return !strings.HasSuffix(string(s), "_IN_PROGRESS")
}

// IsFailed reports whether the last operation on the stack failed or rolled back
func (s StackStatus) IsFailed() bool {
	return strings.HasSuffix(string(s), "_FAILED") || strings.Contains(string(s), "ROLLBACK")
}

// Stack represents a CloudFormation stack with essential information
type Stack struct {
	Name        string
	Status      StackStatus
	CreatedTime *time.Time
	UpdatedTime *time.Time
	Description string
	Outputs     map[string]string
	Tags        map[string]string
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// GetStack retrieves a stack. ErrStackNotFound is returned for stacks that do
// not exist.
func (cf *DefaultCloudFormationOperations) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isStackNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrStackNotFound, stackName)
		}
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrStackNotFound, stackName)
	}

	cfnStack := result.Stacks[0]
	stack := &Stack{
		Name:        aws.ToString(cfnStack.StackName),
		Status:      StackStatus(cfnStack.StackStatus),
		CreatedTime: cfnStack.CreationTime,
		UpdatedTime: cfnStack.LastUpdatedTime,
		Description: aws.ToString(cfnStack.Description),
		Outputs:     make(map[string]string),
		Tags:        make(map[string]string),
	}

	for _, output := range cfnStack.Outputs {
		stack.Outputs[aws.ToString(output.OutputKey)] = aws.ToString(output.OutputValue)
	}

	for _, tag := range cfnStack.Tags {
		stack.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return stack, nil
}

// StackExists checks if a stack exists
func (cf *DefaultCloudFormationOperations) StackExists(ctx context.Context, stackName string) (bool, error) {
	_, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		if isStackNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if stack exists: %w", err)
	}

	return true, nil
}

// ListStacks lists all stacks that have not been deleted
func (cf *DefaultCloudFormationOperations) ListStacks(ctx context.Context) ([]*Stack, error) {
	var stacks []*Stack
	paginator := cloudformation.NewListStacksPaginator(cf.client, &cloudformation.ListStacksInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stacks: %w", err)
		}

		for _, summary := range page.StackSummaries {
			if summary.StackStatus == types.StackStatusDeleteComplete {
				continue
			}

			stacks = append(stacks, &Stack{
				Name:        aws.ToString(summary.StackName),
				Status:      StackStatus(summary.StackStatus),
				CreatedTime: summary.CreationTime,
				UpdatedTime: summary.LastUpdatedTime,
				Description: aws.ToString(summary.TemplateDescription),
			})
		}
	}

	return stacks, nil
}

// isStackNotFoundError matches the ValidationError CloudFormation returns for
// unknown stack names
func isStackNotFoundError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}
	return err != nil && strings.Contains(err.Error(), "does not exist")
}
