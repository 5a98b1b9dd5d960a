package service

import "vehiclebooking/internal/db"

// allowedTransitions is the regular booking state machine. Administrators
// bypass it through the override path in SetStatus.
var allowedTransitions = map[string][]string{
	db.StatusPending:   {db.StatusConfirmed, db.StatusCancelled},
	db.StatusConfirmed: {db.StatusCompleted, db.StatusCancelled},
	db.StatusCompleted: {},
	db.StatusCancelled: {},
}

// CanTransition reports whether from -> to is a regular transition.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
