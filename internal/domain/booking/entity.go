package booking

import (
	"time"

	"gearshare/internal/pkg/errs"
)

var (
	ErrEndNotAfterStart = errs.Validation("booking end must be after its start")
	ErrStartInPast      = errs.Validation("booking start cannot be in the past")
	ErrEndNotInFuture   = errs.Validation("booking end must be in the future")
)

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   Status
}

// ValidateWindow checks the temporal invariants of a new booking against a
// fixed "now". Order matters: the end-after-start rule is reported before any
// other failure, ahead of all existence checks done by the caller.
func ValidateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return ErrEndNotAfterStart
	}
	if start.Before(now) {
		return ErrStartInPast
	}
	if !end.After(now) {
		return ErrEndNotInFuture
	}
	return nil
}

// New builds a WAITING booking. Callers are expected to have already run
// ValidateWindow with the same "now".
func New(itemID, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if err := ValidateWindow(start, end, now); err != nil {
		return nil, err
	}
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		start:    start,
		end:      end,
		status:   StatusWaiting,
	}, nil
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Start() time.Time { return b.start }
func (b *Booking) End() time.Time   { return b.end }
func (b *Booking) Status() Status   { return b.status }
