/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/orien/simplecdk/internal/model"
	"github.com/orien/simplecdk/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusCommand_Exists(t *testing.T) {
	statusCmd := findCommand(rootCmd, "status")

	require.NotNil(t, statusCmd, "status command should be registered")
	assert.NotNil(t, statusCmd.Flags().Lookup("outputs"))
	assert.Error(t, statusCmd.Args(statusCmd, []string{"dev"}))
}

func TestStatusCommand_WithMockReporter_Success(t *testing.T) {
	configFile := writeTestProject(t, testConfig, nil)

	mockReporter := &status.MockReporter{}
	mockReporter.On("Report", mock.Anything, mock.MatchedBy(func(m *model.Model) bool {
		return m.DeploymentName == "examples" && len(m.StackOrder) == 2
	})).Return([]*status.StackStatus{
		{ID: "main", Name: "examples-main-dev", Region: "us-east-1", Status: "CREATE_COMPLETE", Deployed: true,
			Outputs: map[string]string{"TopicArn": "arn:aws:sns:us-east-1:123456789012:orders"}},
		{ID: "worker", Name: "examples-worker-dev", Region: "us-east-1", Status: status.NotDeployed},
	}, nil)
	SetReporter(mockReporter)

	output, err := executeCommand(t, "status", "--config", configFile, "--outputs")

	require.NoError(t, err)
	assert.Contains(t, output, "Deployment: examples")
	assert.Contains(t, output, "examples-main-dev")
	assert.Contains(t, output, "CREATE_COMPLETE")
	assert.Contains(t, output, status.NotDeployed)
	assert.Contains(t, output, "TopicArn: arn:aws:sns:us-east-1:123456789012:orders")
	mockReporter.AssertExpectations(t)
}

func TestStatusCommand_ReporterError(t *testing.T) {
	configFile := writeTestProject(t, testConfig, nil)

	mockReporter := &status.MockReporter{}
	mockReporter.On("Report", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))
	SetReporter(mockReporter)

	_, err := executeCommand(t, "status", "--config", configFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get stack status")
	assert.Contains(t, err.Error(), "access denied")
}
