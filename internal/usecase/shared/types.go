package shared

import (
	"time"

	"gearshare/internal/domain/booking"
)

// Minimal snapshots for command-side precondition checks.

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// BookingSnapshot carries the item owner alongside the booking so that
// authorization checks need no second read.
type BookingSnapshot struct {
	ID          int64
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

type RequestSnapshot struct {
	ID          int64
	RequesterID int64
	Description string
	Created     time.Time
}
