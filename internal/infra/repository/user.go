package repository

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/infra/db"
	"gearshare/internal/usecase/queries"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	const q = `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, q, u.Name(), u.Email()).Scan(&id); err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, name, email string) error {
	const q = `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, name, email)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var v queries.UserView
	if err := s.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Email); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

func (s *UserReadStore) List(ctx context.Context) ([]queries.UserView, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}
