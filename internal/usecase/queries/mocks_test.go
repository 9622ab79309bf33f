//go:build unit

package queries

import (
	"context"

	"gearshare/internal/infra"

	"github.com/stretchr/testify/mock"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id int64) (*UserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserReadStore) List(ctx context.Context) ([]UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockItemReadStore struct {
	mock.Mock
}

func (m *MockItemReadStore) FindByID(ctx context.Context, id int64) (*ItemView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemReadStore) ListByOwner(ctx context.Context, ownerID int64) ([]ItemView, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemReadStore) Search(ctx context.Context, text string) ([]ItemView, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemReadStore) ListByRequest(ctx context.Context, requestID int64) ([]ItemView, error) {
	args := m.Called(ctx, requestID)
	if v := args.Get(0); v != nil {
		return v.([]ItemView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemReadStore) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingReadStore struct {
	mock.Mock
}

func (m *MockBookingReadStore) FindByID(ctx context.Context, id int64) (*BookingView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingReadStore) ListByBooker(ctx context.Context, bookerID int64, f BookingFilter) ([]BookingView, error) {
	args := m.Called(ctx, bookerID, f)
	if v := args.Get(0); v != nil {
		return v.([]BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingReadStore) ListByOwner(ctx context.Context, ownerID int64, f BookingFilter) ([]BookingView, error) {
	args := m.Called(ctx, ownerID, f)
	if v := args.Get(0); v != nil {
		return v.([]BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCommentReadStore struct {
	mock.Mock
}

func (m *MockCommentReadStore) ListByItem(ctx context.Context, itemID int64) ([]CommentView, error) {
	args := m.Called(ctx, itemID)
	if v := args.Get(0); v != nil {
		return v.([]CommentView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRequestReadStore struct {
	mock.Mock
}

func (m *MockRequestReadStore) FindByID(ctx context.Context, id int64) (*RequestView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestReadStore) ListByRequester(ctx context.Context, requesterID int64) ([]RequestView, error) {
	args := m.Called(ctx, requesterID)
	if v := args.Get(0); v != nil {
		return v.([]RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestReadStore) ListAll(ctx context.Context, offset, limit int) ([]RequestView, error) {
	args := m.Called(ctx, offset, limit)
	if v := args.Get(0); v != nil {
		return v.([]RequestView), args.Error(1)
	}
	return nil, args.Error(1)
}
