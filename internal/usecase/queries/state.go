package queries

import (
	"strings"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/pkg/errs"
)

// State is the semantic bucket used to filter booking listings.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StatePast     State = "PAST"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errs.Validation("unknown booking state")

// ParseState accepts the bucket name case-insensitively; an empty value
// defaults to ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	st := State(strings.ToUpper(s))
	switch st {
	case StateAll, StateCurrent, StateFuture, StatePast, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", ErrUnknownState
	}
}

// BookingFilter is the store-facing shape of a state bucket. Zero value means
// no restriction (ALL). All listings are sorted by start descending.
type BookingFilter struct {
	Statuses   []booking.Status
	StartAfter *time.Time
	EndBefore  *time.Time
	At         *time.Time // start <= At <= end
}

// FilterForState classifies a bucket against a fixed "now". REJECTED folds in
// CANCELED for both the booker and the owner view.
func FilterForState(st State, now time.Time) BookingFilter {
	switch st {
	case StateCurrent:
		return BookingFilter{At: &now}
	case StateFuture:
		return BookingFilter{StartAfter: &now}
	case StatePast:
		return BookingFilter{EndBefore: &now}
	case StateWaiting:
		return BookingFilter{Statuses: []booking.Status{booking.StatusWaiting}}
	case StateRejected:
		return BookingFilter{Statuses: []booking.Status{booking.StatusRejected, booking.StatusCanceled}}
	default:
		return BookingFilter{}
	}
}
