package repository

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (int64, error) {
	const q = `
		INSERT INTO requests (requester_id, description, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		req.RequesterID(), req.Description(), req.Created(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestViewColumns = `id, description, requester_id, created`

func scanRequestView(row pgx.Row, v *queries.RequestView) error {
	return row.Scan(&v.ID, &v.Description, &v.RequesterID, &v.Created)
}

func (s *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	q := `SELECT ` + requestViewColumns + ` FROM requests WHERE id = $1`

	var v queries.RequestView
	if err := scanRequestView(s.db.QueryRow(ctx, q, id), &v); err != nil {
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return &v, nil
}

func (s *RequestReadStore) ListByRequester(ctx context.Context, requesterID int64) ([]queries.RequestView, error) {
	q := `SELECT ` + requestViewColumns + ` FROM requests WHERE requester_id = $1 ORDER BY created DESC, id DESC`

	rows, err := s.db.Query(ctx, q, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	return collectRequestViews(rows)
}

func (s *RequestReadStore) ListAll(ctx context.Context, offset, limit int) ([]queries.RequestView, error) {
	q := `SELECT ` + requestViewColumns + ` FROM requests ORDER BY created DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	return collectRequestViews(rows)
}

func collectRequestViews(rows pgx.Rows) ([]queries.RequestView, error) {
	defer rows.Close()

	views := make([]queries.RequestView, 0)
	for rows.Next() {
		var v queries.RequestView
		if err := scanRequestView(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return views, nil
}
