package model

// Status is the booking lifecycle state. Transition legality is encoded in
// the table below rather than compared ad hoc at call sites.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// transitions maps each state to the states it may legally move to.
// CHECKED_OUT, CANCELLED, and NO_SHOW are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	next, ok := transitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether s -> next is a legal lifecycle move.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// BlockingStatuses are the states whose bookings hold a room against
// overlapping date ranges. Terminal bookings never block availability.
func BlockingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed), string(StatusCheckedIn)}
}
