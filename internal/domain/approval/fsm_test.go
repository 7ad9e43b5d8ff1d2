package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleLevelTransitions(t *testing.T) {
	chart := SingleLevel()

	cases := []struct {
		name    string
		from    State
		action  Action
		want    State
		wantErr error
	}{
		{"pending approve", StatePending, ActionApprove, StateApproved, nil},
		{"pending reject", StatePending, ActionReject, StateRejected, nil},
		{"approved approve", StateApproved, ActionApprove, "", ErrAlreadyProcessed},
		{"approved reject", StateApproved, ActionReject, "", ErrAlreadyProcessed},
		{"rejected approve", StateRejected, ActionApprove, "", ErrAlreadyProcessed},
		{"pending approve_l2", StatePending, ActionApproveL2, "", ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := chart.Next(tc.from, tc.action)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSingleLevelReprocessPolicy(t *testing.T) {
	chart := SingleLevel(WithReprocess())

	// Overwriting an earlier decision is permitted under the policy
	got, err := chart.Next(StateApproved, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, StateRejected, got)

	got, err = chart.Next(StateRejected, ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, StateApproved, got)

	// Actions outside the reprocess set still fail
	_, err = chart.Next(StateApproved, ActionApproveL1)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestTwoLevelTransitions(t *testing.T) {
	chart := TwoLevel()

	// The only path to approved_l2 goes through approved_l1
	got, err := chart.Next(StatePending, ActionApproveL1)
	require.NoError(t, err)
	assert.Equal(t, StateApprovedL1, got)

	got, err = chart.Next(StateApprovedL1, ActionApproveL2)
	require.NoError(t, err)
	assert.Equal(t, StateApprovedL2, got)

	// approve_l2 on a pending request must not move it
	_, err = chart.Next(StatePending, ActionApproveL2)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Rejection is reachable from both non-terminal states
	got, err = chart.Next(StatePending, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, StateRejected, got)

	got, err = chart.Next(StateApprovedL1, ActionReject)
	require.NoError(t, err)
	assert.Equal(t, StateRejected, got)

	// Terminal states admit nothing by default
	_, err = chart.Next(StateApprovedL2, ActionReject)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	_, err = chart.Next(StateRejected, ActionApproveL1)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestTwoLevelTerminalStates(t *testing.T) {
	chart := TwoLevel()

	assert.True(t, chart.IsTerminal(StateApprovedL2))
	assert.True(t, chart.IsTerminal(StateRejected))
	assert.False(t, chart.IsTerminal(StatePending))
	assert.False(t, chart.IsTerminal(StateApprovedL1))
}
