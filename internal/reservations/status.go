package reservations

import (
	"fmt"
	"sort"
	"strings"

	"staybook/internal/scheduling"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCheckedIn      Status = "checked_in"
	StatusCheckedOut     Status = "checked_out"
	StatusCancelled      Status = "cancelled"
)

// Action is the verb staff or workflows apply to a reservation. Each action
// maps to exactly one target status.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionDecline  Action = "decline"
	ActionCheckin  Action = "checkin"
	ActionCheckout Action = "checkout"
	ActionCancel   Action = "cancel"
)

var actionTargets = map[Action]Status{
	ActionConfirm:  StatusConfirmed,
	ActionDecline:  StatusCancelled,
	ActionCheckin:  StatusCheckedIn,
	ActionCheckout: StatusCheckedOut,
	ActionCancel:   StatusCancelled,
}

// transitions is the full lifecycle graph. A status missing from the map, or
// mapped to an empty list, accepts no further transitions.
var transitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:      {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut:     {},
	StatusCancelled:      {},
}

// IsValid checks if the reservation status is valid
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the lifecycle graph allows moving from s
// to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TargetForAction resolves an action verb to its target status.
func TargetForAction(action Action) (Status, error) {
	target, ok := actionTargets[action]
	if !ok {
		return "", scheduling.NewValidationError("action",
			fmt.Sprintf("unknown action %q, expected one of: %s", action, strings.Join(actionNames(), ", ")))
	}
	return target, nil
}

func actionNames() []string {
	names := make([]string, 0, len(actionTargets))
	for a := range actionTargets {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}
