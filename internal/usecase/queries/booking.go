package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
)

var (
	ErrBookingNotFound     = errs.NotFound("booking not found")
	ErrBookingAccessDenied = errs.Forbidden("booking does not relate to this user")
	ErrOwnerWithoutItems   = errs.Validation("user has no items to list bookings for")
)

// BookingReadStore lists booking views for one scope. Implementations must
// return results sorted by start descending.
type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID int64, f BookingFilter) ([]BookingView, error)
	ListByOwner(ctx context.Context, ownerID int64, f BookingFilter) ([]BookingView, error)
}

type BookingQueries interface {
	// GetByID returns the booking if the viewer is its booker or the item's
	// owner.
	GetByID(ctx context.Context, viewerID, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, state State) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state State) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	items    ItemReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, items ItemReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, items: items, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, viewerID, bookingID int64) (*BookingView, error) {
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != viewerID && view.Item.OwnerID != viewerID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID int64, state State) ([]BookingView, error) {
	if err := requireUser(ctx, q.users, bookerID); err != nil {
		return nil, err
	}
	return q.bookings.ListByBooker(ctx, bookerID, FilterForState(state, q.clock.Now()))
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, state State) ([]BookingView, error) {
	if err := requireUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}
	owned, err := q.items.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, ErrOwnerWithoutItems
	}
	return q.bookings.ListByOwner(ctx, ownerID, FilterForState(state, q.clock.Now()))
}
