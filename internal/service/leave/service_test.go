package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
)

func TestTransitionError(t *testing.T) {
	tests := []struct {
		name  string
		state approval.State
		want  error
	}{
		{"pending maps to not-awaiting", approval.StatePending, leave.ErrNotAwaitingL2},
		{"approved_l1 maps to not-awaiting", approval.StateApprovedL1, leave.ErrNotAwaitingL2},
		{"rejected is terminal", approval.StateRejected, leave.ErrRequestProcessed},
		{"approved_l2 is terminal", approval.StateApprovedL2, leave.ErrRequestProcessed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transitionError(tt.state, leave.ErrNotAwaitingL2)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTwoLevelChartGuardsSkippedApproval(t *testing.T) {
	chart := approval.TwoLevel()

	// A final approval straight from pending must never pass.
	_, err := chart.Next(approval.StatePending, approval.ActionApproveL2)
	assert.ErrorIs(t, err, approval.ErrInvalidTransition)

	next, err := chart.Next(approval.StatePending, approval.ActionApproveL1)
	assert.NoError(t, err)
	assert.Equal(t, approval.StateApprovedL1, next)

	next, err = chart.Next(approval.StateApprovedL1, approval.ActionApproveL2)
	assert.NoError(t, err)
	assert.Equal(t, approval.StateApprovedL2, next)

	_, err = chart.Next(approval.StateApprovedL2, approval.ActionReject)
	assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
}
