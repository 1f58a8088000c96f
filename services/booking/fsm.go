package booking

import "localpro/models"

var transitions = map[models.BookingStatus]map[models.BookingStatus]struct{}{
	models.BookingPending:   {models.BookingConfirmed: {}, models.BookingCancelled: {}},
	models.BookingConfirmed: {models.BookingCompleted: {}, models.BookingCancelled: {}},
	models.BookingCompleted: {},
	models.BookingCancelled: {},
}

// CanTransition reports whether from -> to is an edge of the booking
// lifecycle. Self-transitions are not edges.
func CanTransition(from, to models.BookingStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s models.BookingStatus) bool {
	allowed, ok := transitions[s]
	return ok && len(allowed) == 0
}

// isRequestable reports whether a provider may ask for s.
func isRequestable(s models.BookingStatus) bool {
	switch s {
	case models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
		return true
	}
	return false
}
