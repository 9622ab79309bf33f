package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/shared"
)

// CommandReads serves the command side's precondition snapshots. Bound to a
// transaction it observes the transaction's view; bound to the pool it reads
// committed state.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var s shared.UserSnapshot
	if err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &s, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const q = `SELECT id, name, email FROM users WHERE email = $1`

	var s shared.UserSnapshot
	if err := r.db.QueryRow(ctx, q, email).Scan(&s.ID, &s.Name, &s.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &s, nil
}

func (r *CommandReads) ItemByID(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	const q = `SELECT id, owner_id, name, description, available, request_id FROM items WHERE id = $1`

	var s shared.ItemSnapshot
	err := r.db.QueryRow(ctx, q, id).
		Scan(&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.Available, &s.RequestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &s, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	const q = `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_at, b.end_at, b.status
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		WHERE b.id = $1`

	var s shared.BookingSnapshot
	var status string
	err := r.db.QueryRow(ctx, q, id).
		Scan(&s.ID, &s.ItemID, &s.ItemOwnerID, &s.BookerID, &s.Start, &s.End, &status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	s.Status = booking.Status(status)
	return &s, nil
}

func (r *CommandReads) RequestByID(ctx context.Context, id int64) (*shared.RequestSnapshot, error) {
	const q = `SELECT id, requester_id, description, created FROM requests WHERE id = $1`

	var s shared.RequestSnapshot
	err := r.db.QueryRow(ctx, q, id).
		Scan(&s.ID, &s.RequesterID, &s.Description, &s.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return &s, nil
}

func (r *CommandReads) BookingsByItem(ctx context.Context, itemID int64) ([]shared.BookingSnapshot, error) {
	const q = `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_at, b.end_at, b.status
		FROM bookings b
		JOIN items i ON b.item_id = i.id
		WHERE b.item_id = $1
		ORDER BY b.start_at, b.id`

	rows, err := r.db.Query(ctx, q, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}
	defer rows.Close()

	snaps := make([]shared.BookingSnapshot, 0)
	for rows.Next() {
		var s shared.BookingSnapshot
		var status string
		if err := rows.Scan(&s.ID, &s.ItemID, &s.ItemOwnerID, &s.BookerID, &s.Start, &s.End, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		s.Status = booking.Status(status)
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return snaps, nil
}
