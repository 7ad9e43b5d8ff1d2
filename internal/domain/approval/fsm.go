package approval

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of an approvable request.
type State string

const (
	StatePending    State = "pending"
	StateApproved   State = "approved"
	StateRejected   State = "rejected"
	StateApprovedL1 State = "approved_l1"
	StateApprovedL2 State = "approved_l2"
)

// Action is a transition request against a chart.
type Action string

const (
	ActionApprove   Action = "approve"
	ActionReject    Action = "reject"
	ActionApproveL1 Action = "approve_l1"
	ActionApproveL2 Action = "approve_l2"
)

var (
	ErrInvalidTransition = errors.New("transition not permitted from current state")
	ErrAlreadyProcessed  = errors.New("request has already been processed")
)

type transitionKey struct {
	from   State
	action Action
}

// Chart is a finite-state machine shared by all approvable request
// kinds. Transitions not present in the table are rejected. The
// reprocess policy optionally re-opens terminal states so an approver
// can overwrite an earlier decision (audit-correction use case).
type Chart struct {
	transitions map[transitionKey]State
	terminal    map[State]bool
	reprocess   map[Action]State
	allowRepro  bool
}

// Option configures a Chart.
type Option func(*Chart)

// WithReprocess permits approve/reject actions on terminal states,
// overwriting the previous decision.
func WithReprocess() Option {
	return func(c *Chart) { c.allowRepro = true }
}

// SingleLevel builds the chart used by attendance, petty cash and
// expense requests: pending -> approved | rejected.
func SingleLevel(opts ...Option) *Chart {
	c := &Chart{
		transitions: map[transitionKey]State{
			{StatePending, ActionApprove}: StateApproved,
			{StatePending, ActionReject}:  StateRejected,
		},
		terminal: map[State]bool{
			StateApproved: true,
			StateRejected: true,
		},
		reprocess: map[Action]State{
			ActionApprove: StateApproved,
			ActionReject:  StateRejected,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TwoLevel builds the chart used by leave requests:
// pending -> approved_l1 -> approved_l2, with rejection reachable from
// pending and approved_l1.
func TwoLevel(opts ...Option) *Chart {
	c := &Chart{
		transitions: map[transitionKey]State{
			{StatePending, ActionApproveL1}:    StateApprovedL1,
			{StateApprovedL1, ActionApproveL2}: StateApprovedL2,
			{StatePending, ActionReject}:       StateRejected,
			{StateApprovedL1, ActionReject}:    StateRejected,
		},
		terminal: map[State]bool{
			StateApprovedL2: true,
			StateRejected:   true,
		},
		reprocess: map[Action]State{
			ActionReject: StateRejected,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Next returns the state reached by applying action to from.
// Terminal states return ErrAlreadyProcessed unless the chart was built
// with WithReprocess and the action supports overwriting.
func (c *Chart) Next(from State, action Action) (State, error) {
	if to, ok := c.transitions[transitionKey{from, action}]; ok {
		return to, nil
	}

	if c.terminal[from] {
		if c.allowRepro {
			if to, ok := c.reprocess[action]; ok {
				return to, nil
			}
		}
		return "", fmt.Errorf("%w: state %q", ErrAlreadyProcessed, from)
	}

	return "", fmt.Errorf("%w: %q on %q", ErrInvalidTransition, action, from)
}

// IsTerminal reports whether s admits no further transitions under the
// default policy.
func (c *Chart) IsTerminal(s State) bool {
	return c.terminal[s]
}
