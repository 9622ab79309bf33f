package repository

import (
	"context"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (int64, error) {
	const q = `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		it.OwnerID(), it.Name(), it.Description(), it.Available(), it.RequestID(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, id int64, name, description string, available bool, requestID *int64) error {
	const q = `
		UPDATE items
		SET name = $2, description = $3, available = $4, request_id = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, name, description, available, requestID)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemViewColumns = `id, name, description, available, owner_id, request_id`

func scanItemView(row pgx.Row, v *queries.ItemView) error {
	return row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID, &v.RequestID)
}

func (s *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	q := `SELECT ` + itemViewColumns + ` FROM items WHERE id = $1`

	var v queries.ItemView
	if err := scanItemView(s.db.QueryRow(ctx, q, id), &v); err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &v, nil
}

func (s *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64) ([]queries.ItemView, error) {
	q := `SELECT ` + itemViewColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return collectItemViews(rows)
}

func (s *ItemReadStore) Search(ctx context.Context, text string) ([]queries.ItemView, error) {
	q := `
		SELECT ` + itemViewColumns + `
		FROM items
		WHERE available
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := s.db.Query(ctx, q, text)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return collectItemViews(rows)
}

func (s *ItemReadStore) ListByRequest(ctx context.Context, requestID int64) ([]queries.ItemView, error) {
	q := `SELECT ` + itemViewColumns + ` FROM items WHERE request_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, q, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request", err)
	}
	return collectItemViews(rows)
}

func (s *ItemReadStore) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	const q = `SELECT count(*) FROM items WHERE owner_id = $1`

	var n int64
	if err := s.db.QueryRow(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count items by owner", err)
	}
	return n, nil
}

func collectItemViews(rows pgx.Rows) ([]queries.ItemView, error) {
	defer rows.Close()

	views := make([]queries.ItemView, 0)
	for rows.Next() {
		var v queries.ItemView
		if err := scanItemView(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return views, nil
}
