package repository

import (
	"context"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
)

var dialect = goqu.Dialect("postgres")

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const q = `
		INSERT INTO bookings (item_id, booker_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		b.ItemID(), b.BookerID(), b.Start(), b.End(), string(b.Status()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	const q = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

// bookingViewQuery joins the item and the booker so one round trip produces a
// complete BookingView row.
func bookingViewQuery() *goqu.SelectDataset {
	return dialect.
		From(goqu.T("bookings").As("b")).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("b.booker_id").Eq(goqu.I("u.id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.start_at"), goqu.I("b.end_at"), goqu.I("b.status"),
			goqu.I("i.id"), goqu.I("i.name"), goqu.I("i.owner_id"),
			goqu.I("u.id"), goqu.I("u.name"),
		)
}

// buildBookingListSQL compiles a state filter into SQL scoped by the given
// column (booker or item owner), newest start first.
func buildBookingListSQL(scope exp.IdentifierExpression, id int64, f queries.BookingFilter) (string, []any, error) {
	q := bookingViewQuery().Where(scope.Eq(id))

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where(goqu.I("b.status").In(statuses))
	}
	if f.StartAfter != nil {
		q = q.Where(goqu.I("b.start_at").Gt(*f.StartAfter))
	}
	if f.EndBefore != nil {
		q = q.Where(goqu.I("b.end_at").Lt(*f.EndBefore))
	}
	if f.At != nil {
		q = q.Where(
			goqu.I("b.start_at").Lte(*f.At),
			goqu.I("b.end_at").Gte(*f.At),
		)
	}

	return q.Order(goqu.I("b.start_at").Desc(), goqu.I("b.id").Desc()).Prepared(true).ToSQL()
}

func (s *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	sql, args, err := bookingViewQuery().Where(goqu.I("b.id").Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var v queries.BookingView
	if err := scanBookingView(s.db.QueryRow(ctx, sql, args...), &v); err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

func (s *BookingReadStore) ListByBooker(ctx context.Context, bookerID int64, f queries.BookingFilter) ([]queries.BookingView, error) {
	sql, args, err := buildBookingListSQL(goqu.I("b.booker_id"), bookerID, f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}
	return s.list(ctx, sql, args)
}

func (s *BookingReadStore) ListByOwner(ctx context.Context, ownerID int64, f queries.BookingFilter) ([]queries.BookingView, error) {
	sql, args, err := buildBookingListSQL(goqu.I("i.owner_id"), ownerID, f)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}
	return s.list(ctx, sql, args)
}

func (s *BookingReadStore) list(ctx context.Context, sql string, args []any) ([]queries.BookingView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]queries.BookingView, 0)
	for rows.Next() {
		var v queries.BookingView
		if err := scanBookingView(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row, v *queries.BookingView) error {
	return row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Item.ID, &v.Item.Name, &v.Item.OwnerID,
		&v.Booker.ID, &v.Booker.Name,
	)
}
