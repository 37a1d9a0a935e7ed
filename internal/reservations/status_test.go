package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending straight to checked_in", StatusPending, StatusCheckedIn, false},
		{"pending_payment to confirmed", StatusPendingPayment, StatusConfirmed, true},
		{"pending_payment to cancelled", StatusPendingPayment, StatusCancelled, true},
		{"pending_payment to checked_out", StatusPendingPayment, StatusCheckedOut, false},
		{"confirmed to checked_in", StatusConfirmed, StatusCheckedIn, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"checked_in to checked_out", StatusCheckedIn, StatusCheckedOut, true},
		{"checked_in to cancelled", StatusCheckedIn, StatusCancelled, true},
		{"checked_out is terminal", StatusCheckedOut, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot re-cancel", StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusTransitionTotality(t *testing.T) {
	all := []Status{StatusPending, StatusPendingPayment, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

	// Every status is known to the graph, and everything a status can reach
	// is a valid status too.
	for _, s := range all {
		assert.True(t, s.IsValid(), "status %s should be valid", s)
		for _, target := range transitions[s] {
			assert.True(t, target.IsValid(), "target %s of %s should be valid", target, s)
		}
	}

	assert.False(t, Status("no_show").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCheckedOut.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPendingPayment.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusCheckedIn.IsTerminal())

	// An unknown status must not look terminal.
	assert.False(t, Status("garbage").IsTerminal())
}

func TestTargetForAction(t *testing.T) {
	tests := []struct {
		action Action
		target Status
	}{
		{ActionConfirm, StatusConfirmed},
		{ActionDecline, StatusCancelled},
		{ActionCheckin, StatusCheckedIn},
		{ActionCheckout, StatusCheckedOut},
		{ActionCancel, StatusCancelled},
	}

	for _, tt := range tests {
		target, err := TargetForAction(tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.target, target)
	}

	_, err := TargetForAction(Action("approve"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "approve")
}
