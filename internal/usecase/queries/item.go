package queries

import (
	"context"
	"strings"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

var ErrItemNotFound = errs.NotFound("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	// ListByOwner returns the owner's items ordered by id ascending.
	ListByOwner(ctx context.Context, ownerID int64) ([]ItemView, error)
	// Search matches name or description case-insensitively, available items
	// only.
	Search(ctx context.Context, text string) ([]ItemView, error)
	ListByRequest(ctx context.Context, requestID int64) ([]ItemView, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type CommentReadStore interface {
	ListByItem(ctx context.Context, itemID int64) ([]CommentView, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, viewerID, itemID int64) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]ItemDetailView, error)
	Search(ctx context.Context, viewerID int64, text string) ([]ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	bookings BookingReadStore
	users    UserReadStore
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, bookings BookingReadStore, users UserReadStore) ItemQueries {
	return &itemQueriesImpl{items: items, comments: comments, bookings: bookings, users: users}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, viewerID, itemID int64) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}

	var (
		comments      []CommentView
		ownerBookings []BookingView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var gerr error
		comments, gerr = q.comments.ListByItem(gctx, itemID)
		return gerr
	})
	g.Go(func() error {
		var gerr error
		ownerBookings, gerr = q.bookings.ListByOwner(gctx, view.OwnerID, BookingFilter{})
		return gerr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return composeDetail(*view, comments, ownerBookings), nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64) ([]ItemDetailView, error) {
	if err := requireUser(ctx, q.users, ownerID); err != nil {
		return nil, err
	}
	views, err := q.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// The positional next/last rule reads the owner's full booking list, so
	// one fetch serves every item.
	ownerBookings, err := q.bookings.ListByOwner(ctx, ownerID, BookingFilter{})
	if err != nil {
		return nil, err
	}

	details := make([]*ItemDetailView, len(views))
	g, gctx := errgroup.WithContext(ctx)
	for i, view := range views {
		g.Go(func() error {
			comments, gerr := q.comments.ListByItem(gctx, view.ID)
			if gerr != nil {
				return gerr
			}
			details[i] = composeDetail(view, comments, ownerBookings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]ItemDetailView, len(details))
	for i, d := range details {
		result[i] = *d
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, viewerID int64, text string) ([]ItemView, error) {
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	return q.items.Search(ctx, text)
}

// composeDetail applies the display heuristic for the next/last booking pair.
// ownerBookings is the owner's full list sorted by start descending; of the
// entries belonging to this item the first fills the "next" slot and the
// second fills "last". A single booking fills both, none leaves both nil.
func composeDetail(view ItemView, comments []CommentView, ownerBookings []BookingView) *ItemDetailView {
	detail := &ItemDetailView{
		ItemView: view,
		Comments: comments,
	}
	var own []BookingView
	for _, b := range ownerBookings {
		if b.Item.ID == view.ID {
			own = append(own, b)
			if len(own) == 2 {
				break
			}
		}
	}
	if len(own) > 0 {
		next := own[0]
		detail.NextBooking = &next
		last := next
		if len(own) > 1 {
			last = own[1]
		}
		detail.LastBooking = &last
	}
	return detail
}
