package queries

import (
	"context"

	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
)

var ErrUserNotFound = errs.NotFound("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, userID int64) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, userID int64) (*UserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]UserView, error) {
	return q.users.List(ctx)
}

// requireUser is the identity guard of the read side: every query entry point
// runs it first for each user id it receives.
func requireUser(ctx context.Context, users UserReadStore, id int64) error {
	if _, err := users.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
