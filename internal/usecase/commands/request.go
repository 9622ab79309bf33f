package commands

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/shared"
)

type RequestCommands interface {
	Create(ctx context.Context, requesterID int64, description string) (int64, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, requesterID int64, description string) (int64, error) {
	now := uc.clock.Now()

	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, txErr := requireUser(ctx, tx.Reads(), requesterID); txErr != nil {
			return txErr
		}
		r, txErr := request.New(requesterID, description, now)
		if txErr != nil {
			return txErr
		}
		id, txErr := tx.Requests().Create(ctx, r)
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
