package uow

import (
	"context"
	"errors"
	"time"

	"gearshare/internal/infra/repository"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries     = 3
	retryBaseDelay = 10 * time.Millisecond
)

var ErrTxRetriesExceeded = errs.New("transaction retries exceeded")

// PostgresUnitOfWork runs commands in pgx transactions and retries
// serialization failures and deadlocks transparently.
type PostgresUnitOfWork struct {
	pool  *pgxpool.Pool
	reads *repository.CommandReads
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{
		pool:  pool,
		reads: repository.NewCommandReads(pool),
	}
}

func (u *PostgresUnitOfWork) CommandReads() shared.CommandReads {
	return u.reads
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := u.runInTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay << attempt):
		}
	}
	return errs.Mark(lastErr, ErrTxRetriesExceeded)
}

func (u *PostgresUnitOfWork) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgTx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	// Rollback after commit is a no-op (pgx.ErrTxClosed).
	defer func() { _ = pgTx.Rollback(ctx) }()

	if err := fn(ctx, txBundle{tx: pgTx}); err != nil {
		return err
	}
	if err := pgTx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// 40001 serialization_failure, 40P01 deadlock_detected
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// txBundle binds the write repositories and snapshot reads to one open
// transaction.
type txBundle struct {
	tx pgx.Tx
}

func (t txBundle) Users() shared.UserRepository       { return repository.NewUserRepository(t.tx) }
func (t txBundle) Items() shared.ItemRepository       { return repository.NewItemRepository(t.tx) }
func (t txBundle) Bookings() shared.BookingRepository { return repository.NewBookingRepository(t.tx) }
func (t txBundle) Comments() shared.CommentRepository { return repository.NewCommentRepository(t.tx) }
func (t txBundle) Requests() shared.RequestRepository { return repository.NewRequestRepository(t.tx) }
func (t txBundle) Reads() shared.CommandReads         { return repository.NewCommandReads(t.tx) }
