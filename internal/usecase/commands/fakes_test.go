//go:build unit

package commands

import (
	"context"
	"sort"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/domain/request"
	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/usecase/shared"
)

// fakeStore is an in-memory stand-in for the persistence layer: snapshot maps
// serve the command reads and the write repositories mutate them, with error
// injection per operation.
type fakeStore struct {
	users    map[int64]shared.UserSnapshot
	items    map[int64]shared.ItemSnapshot
	bookings map[int64]shared.BookingSnapshot
	requests map[int64]shared.RequestSnapshot

	nextID int64

	createUserErr    error
	updateUserErr    error
	deleteUserErr    error
	createItemErr    error
	updateItemErr    error
	createBookingErr error
	updateStatusErr  error
	createCommentErr error
	createRequestErr error

	createdComments []*comment.Comment
	statusWrites    map[int64]booking.Status
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[int64]shared.UserSnapshot{},
		items:        map[int64]shared.ItemSnapshot{},
		bookings:     map[int64]shared.BookingSnapshot{},
		requests:     map[int64]shared.RequestSnapshot{},
		nextID:       100,
		statusWrites: map[int64]booking.Status{},
	}
}

func (s *fakeStore) allocID() int64 {
	s.nextID++
	return s.nextID
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// --- shared.CommandReads ---

func (s *fakeStore) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, notFoundErr("user not found")
}

func (s *fakeStore) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFoundErr("user not found")
}

func (s *fakeStore) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	if it, ok := s.items[id]; ok {
		return &it, nil
	}
	return nil, notFoundErr("item not found")
}

func (s *fakeStore) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	if b, ok := s.bookings[id]; ok {
		return &b, nil
	}
	return nil, notFoundErr("booking not found")
}

func (s *fakeStore) RequestByID(_ context.Context, id int64) (*shared.RequestSnapshot, error) {
	if r, ok := s.requests[id]; ok {
		return &r, nil
	}
	return nil, notFoundErr("request not found")
}

func (s *fakeStore) BookingsByItem(_ context.Context, itemID int64) ([]shared.BookingSnapshot, error) {
	var out []shared.BookingSnapshot
	for _, b := range s.bookings {
		if b.ItemID == itemID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// --- shared.UnitOfWork / shared.Tx ---

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{store: u.store})
}

func (u *fakeUow) CommandReads() shared.CommandReads { return u.store }

type fakeTx struct {
	store *fakeStore
}

func (t fakeTx) Users() shared.UserRepository       { return fakeUserRepo{t.store} }
func (t fakeTx) Items() shared.ItemRepository       { return fakeItemRepo{t.store} }
func (t fakeTx) Bookings() shared.BookingRepository { return fakeBookingRepo{t.store} }
func (t fakeTx) Comments() shared.CommentRepository { return fakeCommentRepo{t.store} }
func (t fakeTx) Requests() shared.RequestRepository { return fakeRequestRepo{t.store} }
func (t fakeTx) Reads() shared.CommandReads         { return t.store }

type fakeUserRepo struct{ s *fakeStore }

func (r fakeUserRepo) Create(_ context.Context, u *user.User) (int64, error) {
	if r.s.createUserErr != nil {
		return 0, r.s.createUserErr
	}
	id := r.s.allocID()
	r.s.users[id] = shared.UserSnapshot{ID: id, Name: u.Name(), Email: u.Email()}
	return id, nil
}

func (r fakeUserRepo) Update(_ context.Context, id int64, name, email string) error {
	if r.s.updateUserErr != nil {
		return r.s.updateUserErr
	}
	r.s.users[id] = shared.UserSnapshot{ID: id, Name: name, Email: email}
	return nil
}

func (r fakeUserRepo) Delete(_ context.Context, id int64) error {
	if r.s.deleteUserErr != nil {
		return r.s.deleteUserErr
	}
	delete(r.s.users, id)
	return nil
}

type fakeItemRepo struct{ s *fakeStore }

func (r fakeItemRepo) Create(_ context.Context, it *item.Item) (int64, error) {
	if r.s.createItemErr != nil {
		return 0, r.s.createItemErr
	}
	id := r.s.allocID()
	r.s.items[id] = shared.ItemSnapshot{
		ID:          id,
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
	}
	return id, nil
}

func (r fakeItemRepo) Update(_ context.Context, id int64, name, description string, available bool, requestID *int64) error {
	if r.s.updateItemErr != nil {
		return r.s.updateItemErr
	}
	snap := r.s.items[id]
	snap.Name = name
	snap.Description = description
	snap.Available = available
	snap.RequestID = requestID
	r.s.items[id] = snap
	return nil
}

type fakeBookingRepo struct{ s *fakeStore }

func (r fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	if r.s.createBookingErr != nil {
		return 0, r.s.createBookingErr
	}
	id := r.s.allocID()
	item := r.s.items[b.ItemID()]
	r.s.bookings[id] = shared.BookingSnapshot{
		ID:          id,
		ItemID:      b.ItemID(),
		ItemOwnerID: item.OwnerID,
		BookerID:    b.BookerID(),
		Start:       b.Start(),
		End:         b.End(),
		Status:      b.Status(),
	}
	return id, nil
}

func (r fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status booking.Status) error {
	if r.s.updateStatusErr != nil {
		return r.s.updateStatusErr
	}
	snap := r.s.bookings[id]
	snap.Status = status
	r.s.bookings[id] = snap
	r.s.statusWrites[id] = status
	return nil
}

type fakeCommentRepo struct{ s *fakeStore }

func (r fakeCommentRepo) Create(_ context.Context, c *comment.Comment) (int64, error) {
	if r.s.createCommentErr != nil {
		return 0, r.s.createCommentErr
	}
	r.s.createdComments = append(r.s.createdComments, c)
	return r.s.allocID(), nil
}

type fakeRequestRepo struct{ s *fakeStore }

func (r fakeRequestRepo) Create(_ context.Context, req *request.Request) (int64, error) {
	if r.s.createRequestErr != nil {
		return 0, r.s.createRequestErr
	}
	id := r.s.allocID()
	r.s.requests[id] = shared.RequestSnapshot{
		ID:          id,
		RequesterID: req.RequesterID(),
		Description: req.Description(),
		Created:     req.Created(),
	}
	return id, nil
}

// --- fixture helpers ---

func (s *fakeStore) seedUser(id int64, email string) {
	s.users[id] = shared.UserSnapshot{ID: id, Name: "user", Email: email}
}

func (s *fakeStore) seedItem(id, ownerID int64, available bool) {
	s.items[id] = shared.ItemSnapshot{
		ID: id, OwnerID: ownerID, Name: "drill", Description: "cordless", Available: available,
	}
}

func (s *fakeStore) seedBooking(b shared.BookingSnapshot) {
	s.bookings[b.ID] = b
}
