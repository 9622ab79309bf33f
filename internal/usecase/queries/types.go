package queries

import "time"

// Read-side view models. Views are assembled by the read stores and composed
// by the query services; they never leak domain entities.

type UserView struct {
	ID    int64
	Name  string
	Email string
}

type UserRef struct {
	ID   int64
	Name string
}

type ItemRef struct {
	ID      int64
	Name    string
	OwnerID int64
}

type BookingView struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status string
	Item   ItemRef
	Booker UserRef
}

type CommentView struct {
	ID         int64
	ItemID     int64
	AuthorName string
	Text       string
	Created    time.Time
}

type ItemView struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// ItemDetailView is the display composition of an item: its comments plus the
// positional next/last booking pair derived from the owner's booking list.
type ItemDetailView struct {
	ItemView
	Comments    []CommentView
	NextBooking *BookingView
	LastBooking *BookingView
}

type RequestView struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
	Items       []ItemView
}
