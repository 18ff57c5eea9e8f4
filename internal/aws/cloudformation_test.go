/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stackDoesNotExist(name string) error {
	return &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Stack with id " + name + " does not exist",
	}
}

func TestGetStack_Success(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	cfOps := NewCloudFormationOperationsWithClient(mockClient)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mockClient.On("DescribeStacks", ctx, mock.MatchedBy(func(input *cloudformation.DescribeStacksInput) bool {
		return aws.ToString(input.StackName) == "examples-main"
	})).Return(&cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			{
				StackName:    aws.String("examples-main"),
				StackStatus:  types.StackStatusUpdateComplete,
				CreationTime: &created,
				Description:  aws.String("main stack"),
				Outputs: []types.Output{
					{OutputKey: aws.String("TopicArn"), OutputValue: aws.String("arn:aws:sns:us-east-1:123:topic")},
				},
				Tags: []types.Tag{
					{Key: aws.String("Environment"), Value: aws.String("dev")},
				},
			},
		},
	}, nil)

	stack, err := cfOps.GetStack(ctx, "examples-main")

	require.NoError(t, err)
	assert.Equal(t, "examples-main", stack.Name)
	assert.Equal(t, StackStatusUpdateComplete, stack.Status)
	assert.Equal(t, &created, stack.CreatedTime)
	assert.Nil(t, stack.UpdatedTime)
	assert.Equal(t, "main stack", stack.Description)
	assert.Equal(t, map[string]string{"TopicArn": "arn:aws:sns:us-east-1:123:topic"}, stack.Outputs)
	assert.Equal(t, map[string]string{"Environment": "dev"}, stack.Tags)
	mockClient.AssertExpectations(t)
}

func TestGetStack_NotFound(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	cfOps := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, stackDoesNotExist("missing"))

	stack, err := cfOps.GetStack(ctx, "missing")

	assert.Nil(t, stack)
	assert.ErrorIs(t, err, ErrStackNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestGetStack_EmptyResult(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	cfOps := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(&cloudformation.DescribeStacksOutput{}, nil)

	_, err := cfOps.GetStack(ctx, "ghost")

	assert.ErrorIs(t, err, ErrStackNotFound)
}

func TestGetStack_OtherErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	cfOps := NewCloudFormationOperationsWithClient(mockClient)

	apiErr := &smithy.GenericAPIError{Code: "AccessDenied", Message: "not authorized"}
	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, apiErr)

	_, err := cfOps.GetStack(ctx, "examples-main")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrStackNotFound)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "failed to describe stack examples-main")
}

func TestStackExists(t *testing.T) {
	tests := []struct {
		name      string
		output    *cloudformation.DescribeStacksOutput
		err       error
		want      bool
		expectErr bool
	}{
		{
			name:   "existing stack",
			output: &cloudformation.DescribeStacksOutput{Stacks: []types.Stack{{StackName: aws.String("s")}}},
			want:   true,
		},
		{
			name: "missing stack",
			err:  stackDoesNotExist("s"),
			want: false,
		},
		{
			name: "missing stack reported as plain error",
			err:  errors.New("ValidationError: Stack with id s does not exist"),
			want: false,
		},
		{
			name:      "throttled",
			err:       &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockClient := &MockCloudFormationClient{}
			if tt.output != nil {
				mockClient.On("DescribeStacks", ctx, mock.Anything).Return(tt.output, nil)
			} else {
				mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, tt.err)
			}

			exists, err := NewCloudFormationOperationsWithClient(mockClient).StackExists(ctx, "s")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestListStacks_SkipsDeletedStacks(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	cfOps := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("ListStacks", mock.Anything, mock.Anything).Return(&cloudformation.ListStacksOutput{
		StackSummaries: []types.StackSummary{
			{StackName: aws.String("live"), StackStatus: types.StackStatusCreateComplete},
			{StackName: aws.String("gone"), StackStatus: types.StackStatusDeleteComplete},
		},
	}, nil)

	stacks, err := cfOps.ListStacks(ctx)

	require.NoError(t, err)
	require.Len(t, stacks, 1)
	assert.Equal(t, "live", stacks[0].Name)
	assert.Equal(t, StackStatusCreateComplete, stacks[0].Status)
}

func TestListStacks_Error(t *testing.T) {
	mockClient := &MockCloudFormationClient{}
	mockClient.On("ListStacks", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewCloudFormationOperationsWithClient(mockClient).ListStacks(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list stacks")
}

func TestStackStatus_Classification(t *testing.T) {
	tests := []struct {
		status   StackStatus
		complete bool
		failed   bool
	}{
		{StackStatusCreateInProgress, false, false},
		{StackStatusCreateComplete, true, false},
		{StackStatusCreateFailed, true, true},
		{StackStatusUpdateComplete, true, false},
		{StackStatusUpdateRollbackComplete, true, true},
		{StackStatusRollbackInProgress, false, true},
		{StackStatusDeleteFailed, true, true},
		{StackStatusReviewInProgress, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.complete, tt.status.IsComplete())
			assert.Equal(t, tt.failed, tt.status.IsFailed())
		})
	}
}
