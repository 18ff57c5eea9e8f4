/*
Copyright © 2025 Simplecdk Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws_test

import (
	"fmt"

	"github.com/orien/simplecdk/internal/aws"
)

// ExampleStackStatus demonstrates classifying stack statuses
func ExampleStackStatus() {
	for _, status := range []aws.StackStatus{
		aws.StackStatusCreateComplete,
		aws.StackStatusUpdateInProgress,
		aws.StackStatusUpdateRollbackComplete,
	} {
		fmt.Printf("%s complete=%t failed=%t\n", status, status.IsComplete(), status.IsFailed())
	}
	// Output: CREATE_COMPLETE complete=true failed=false
	// UPDATE_IN_PROGRESS complete=false failed=false
	// UPDATE_ROLLBACK_COMPLETE complete=true failed=true
}
