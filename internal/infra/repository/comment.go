package repository

import (
	"context"

	"gearshare/internal/domain/comment"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) *CommentRepository {
	return &CommentRepository{db: dbtx}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	const q = `
		INSERT INTO comments (item_id, author_id, text, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		c.ItemID(), c.AuthorID(), c.Text(), c.Created(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

func (s *CommentReadStore) ListByItem(ctx context.Context, itemID int64) ([]queries.CommentView, error) {
	const q = `
		SELECT c.id, c.item_id, u.name, c.text, c.created
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.item_id = $1
		ORDER BY c.id`

	rows, err := s.db.Query(ctx, q, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	views := make([]queries.CommentView, 0)
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.ItemID, &v.AuthorName, &v.Text, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}
