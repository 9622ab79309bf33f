package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/domain/comment"
	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/shared"
)

var (
	ErrItemNotFound    = errs.NotFound("item not found")
	ErrNotItemOwner    = errs.Forbidden("item does not belong to this user")
	ErrRequestNotFound = errs.NotFound("request not found")

	// Comment eligibility ladder, in check order.
	ErrItemNeverBooked    = errs.Validation("item has no bookings yet")
	ErrCommentNotBooker   = errs.Forbidden("user has never booked this item")
	ErrCommentNotApproved = errs.Forbidden("user's booking was not approved")
	ErrRentalNotFinished  = errs.Validation("rental has not finished yet")
)

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
	RequestID   *int64
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, in CreateItemInput) (int64, error)
	Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) error
	AddComment(ctx context.Context, authorID, itemID int64, text string) (int64, error)
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, in CreateItemInput) (int64, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := requireUser(ctx, tx.Reads(), ownerID); txErr != nil {
			return txErr
		}
		if in.RequestID != nil {
			if txErr := requireRequest(ctx, tx.Reads(), *in.RequestID); txErr != nil {
				return txErr
			}
		}
		it, txErr := item.New(ownerID, in.Name, in.Description, in.Available, in.RequestID)
		if txErr != nil {
			return txErr
		}
		id, txErr := tx.Items().Create(ctx, it)
		if txErr != nil {
			return errs.Mark(txErr, ErrStorageFailure)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, actorID, itemID int64, in UpdateItemInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := requireUser(ctx, tx.Reads(), actorID); txErr != nil {
			return txErr
		}
		snap, txErr := requireItem(ctx, tx.Reads(), itemID)
		if txErr != nil {
			return txErr
		}
		if snap.OwnerID != actorID {
			return ErrNotItemOwner
		}

		requestID := snap.RequestID
		if in.RequestID != nil {
			if txErr := requireRequest(ctx, tx.Reads(), *in.RequestID); txErr != nil {
				return txErr
			}
			requestID = in.RequestID
		}

		merged, txErr := item.New(
			snap.OwnerID,
			patch.Coalesce(patch.TrimmedString(in.Name), snap.Name),
			patch.Coalesce(patch.TrimmedString(in.Description), snap.Description),
			patch.Coalesce(in.Available, snap.Available),
			requestID,
		)
		if txErr != nil {
			return txErr
		}

		if txErr := tx.Items().Update(ctx, itemID, merged.Name(), merged.Description(), merged.Available(), merged.RequestID()); txErr != nil {
			return errs.Mark(txErr, ErrStorageFailure)
		}
		return nil
	})
}

func (uc *itemUseCaseImpl) AddComment(ctx context.Context, authorID, itemID int64, text string) (int64, error) {
	now := uc.clock.Now()

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := requireUser(ctx, tx.Reads(), authorID); txErr != nil {
			return txErr
		}
		snap, txErr := requireItem(ctx, tx.Reads(), itemID)
		if txErr != nil {
			return txErr
		}
		if txErr := assertCanComment(ctx, tx.Reads(), authorID, snap.ID, now); txErr != nil {
			return txErr
		}

		c, txErr := comment.New(itemID, authorID, text, now)
		if txErr != nil {
			return txErr
		}
		id, txErr := tx.Comments().Create(ctx, c)
		if txErr != nil {
			return errs.Mark(txErr, ErrStorageFailure)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

// assertCanComment walks the eligibility ladder: the item must have bookings
// at all, the author must appear among its bookers, the author's earliest
// booking must be approved, and that rental must have finished. BookingsByItem
// is ordered by start ascending, which makes "the author's booking"
// deterministic.
func assertCanComment(ctx context.Context, reads shared.CommandReads, authorID, itemID int64, now time.Time) error {
	bookings, err := reads.BookingsByItem(ctx, itemID)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	if len(bookings) == 0 {
		return ErrItemNeverBooked
	}

	var own *shared.BookingSnapshot
	for i := range bookings {
		if bookings[i].BookerID == authorID {
			own = &bookings[i]
			break
		}
	}
	if own == nil {
		return ErrCommentNotBooker
	}
	if own.Status != booking.StatusApproved {
		return ErrCommentNotApproved
	}
	if !own.End.Before(now) {
		return ErrRentalNotFinished
	}
	return nil
}

func requireItem(ctx context.Context, reads shared.CommandReads, id int64) (*shared.ItemSnapshot, error) {
	snap, err := reads.ItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return snap, nil
}

func requireRequest(ctx context.Context, reads shared.CommandReads, id int64) error {
	if _, err := reads.RequestByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
