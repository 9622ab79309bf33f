package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
)

var (
	ErrRequestNotFound  = errs.NotFound("request not found")
	ErrNegativePageArgs = errs.Validation("pagination arguments cannot be negative")
	ErrZeroPageSize     = errs.Validation("page size must be positive")
)

// RequestReadStore returns request views without their items; the query
// service attaches the answering items.
type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// ListByRequester returns the user's requests sorted by created descending.
	ListByRequester(ctx context.Context, requesterID int64) ([]RequestView, error)
	// ListAll pages over every request sorted by created descending.
	ListAll(ctx context.Context, offset, limit int) ([]RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, viewerID, requestID int64) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID int64) ([]RequestView, error)
	ListAll(ctx context.Context, viewerID int64, from, size int) ([]RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, items: items, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, viewerID, requestID int64) (*RequestView, error) {
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}
	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID int64) ([]RequestView, error) {
	if err := requireUser(ctx, q.users, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if err := q.attachItems(ctx, &views[i]); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) ListAll(ctx context.Context, viewerID int64, from, size int) ([]RequestView, error) {
	if err := requireUser(ctx, q.users, viewerID); err != nil {
		return nil, err
	}
	if from < 0 || size < 0 {
		return nil, ErrNegativePageArgs
	}
	if size == 0 {
		return nil, ErrZeroPageSize
	}
	// Page-aligned offset: requests are paged, not windowed.
	offset := (from / size) * size
	views, err := q.requests.ListAll(ctx, offset, size)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if err := q.attachItems(ctx, &views[i]); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, view *RequestView) error {
	items, err := q.items.ListByRequest(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Items = items
	return nil
}
