package models

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Terminal states accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// kitchenEdges is the forward-progress transition table used by the staff
// dashboard. Settling a table to paid is a separate edge, see Settleable.
var kitchenEdges = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusPaid},
}

// CanTransitionTo reports whether next is a legal kitchen transition from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range kitchenEdges[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Settleable reports whether the billing-clear transition to paid is legal
// from s. Clearing a table pays out orders that never reached completed.
func (s Status) Settleable() bool {
	return !s.Terminal()
}
