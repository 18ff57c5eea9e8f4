/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"testing"
	"time"

	"github.com/orien/simplecdk/internal/output"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_Table(t *testing.T) {
	updated := time.Date(2025, 1, 15, 14, 22, 10, 0, time.UTC)
	statuses := []*StackStatus{
		{ID: "main", Name: "examples-main", Region: "us-east-1", Status: "CREATE_COMPLETE", Deployed: true, UpdatedTime: &updated},
		{ID: "other", Name: "examples-other", Region: "us-east-1", Status: NotDeployed},
	}

	result := FormatStatus("examples", statuses, output.NewStyles(false), false)

	assert.Contains(t, result, "Deployment: examples")
	assert.Contains(t, result, "STACK")
	assert.Contains(t, result, "examples-main")
	assert.Contains(t, result, "CREATE_COMPLETE")
	assert.Contains(t, result, "2025-01-15 14:22:10 UTC")
	assert.Contains(t, result, NotDeployed)
	assert.NotContains(t, result, "Outputs of")
}

func TestFormatStatus_WithOutputs(t *testing.T) {
	statuses := []*StackStatus{
		{ID: "main", Status: "CREATE_COMPLETE", Deployed: true, Outputs: map[string]string{
			"QueueUrl": "https://sqs",
			"TopicArn": "arn:aws:sns",
		}},
		{ID: "other", Status: NotDeployed},
	}

	result := FormatStatus("examples", statuses, output.NewStyles(false), true)

	assert.Contains(t, result, "Outputs of main:\n  QueueUrl: https://sqs\n  TopicArn: arn:aws:sns\n")
	assert.NotContains(t, result, "Outputs of other")
}

func TestStatusStyle(t *testing.T) {
	styles := output.NewStyles(false)

	assert.Equal(t, styles.Subtle, statusStyle(&StackStatus{Status: NotDeployed}, styles))
	assert.Equal(t, styles.Error, statusStyle(&StackStatus{Status: "UPDATE_ROLLBACK_COMPLETE", Deployed: true}, styles))
	assert.Equal(t, styles.Warning, statusStyle(&StackStatus{Status: "UPDATE_IN_PROGRESS", Deployed: true}, styles))
	assert.Equal(t, styles.Success, statusStyle(&StackStatus{Status: "CREATE_COMPLETE", Deployed: true}, styles))
}
