package shared

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
)

// UnitOfWork scopes every command to one atomic unit against the store:
// either all writes of an operation commit together or none do.
type UnitOfWork interface {
	// Within runs fn inside a transaction, retrying on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads gives command-side snapshot access outside a transaction,
	// for precondition checks that do not need write isolation.
	CommandReads() CommandReads
}

// Tx exposes the write repositories bound to one open transaction, plus
// snapshot reads that observe the transaction's view.
type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
}

type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	RequestByID(ctx context.Context, id int64) (*RequestSnapshot, error)
	// BookingsByItem returns every booking of the item ordered by start
	// ascending then id; the comment eligibility ladder relies on this order
	// being deterministic.
	BookingsByItem(ctx context.Context, itemID int64) ([]BookingSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) (int64, error)
	Update(ctx context.Context, id int64, name, description string, available bool, requestID *int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (int64, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) (int64, error)
}
