package commands

import (
	"context"
	"time"

	"gearshare/internal/domain/booking"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"
)

var (
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrItemUnavailable = errs.Validation("item is not available for booking")
	ErrBookingDecided  = errs.Validation("booking has already been decided")
)

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, in CreateBookingInput) (int64, error)
	UpdateStatus(ctx context.Context, actorID, bookingID int64, approve bool) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// Create checks, in order: date window, booker existence, item existence,
// item availability. No overlap check against sibling bookings is made; two
// requesters can both hold WAITING bookings for the same window and the
// owner's approval step is the gate.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, in CreateBookingInput) (int64, error) {
	now := uc.clock.Now()
	if err := booking.ValidateWindow(in.Start, in.End, now); err != nil {
		return 0, err
	}

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := requireUser(ctx, tx.Reads(), bookerID); txErr != nil {
			return txErr
		}
		snap, txErr := requireItem(ctx, tx.Reads(), in.ItemID)
		if txErr != nil {
			return txErr
		}
		if !snap.Available {
			return ErrItemUnavailable
		}

		b, txErr := booking.New(in.ItemID, bookerID, in.Start, in.End, now)
		if txErr != nil {
			return txErr
		}
		id, txErr := tx.Bookings().Create(ctx, b)
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

// UpdateStatus moves a WAITING booking to APPROVED or REJECTED. Only the
// item's owner may decide, and a decided booking cannot be decided again.
func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, actorID, bookingID int64, approve bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(txErr, ErrStorageFailure)
		}
		if snap.ItemOwnerID != actorID {
			return ErrNotItemOwner
		}
		if snap.Status.Decided() {
			return ErrBookingDecided
		}

		status := booking.StatusRejected
		if approve {
			status = booking.StatusApproved
		}
		if txErr := tx.Bookings().UpdateStatus(ctx, bookingID, status); txErr != nil {
			return errs.Mark(txErr, ErrStorageFailure)
		}
		return nil
	})
}
