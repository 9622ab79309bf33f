package commands

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/shared"
)

var (
	ErrUserNotFound   = errs.NotFound("user not found")
	ErrEmailTaken     = errs.Duplicated("email is already in use")
	ErrUserReferenced = errs.Validation("user is still referenced by items or bookings")
	ErrStorageFailure = errs.New("storage operation failed")
)

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (int64, error)
	Update(ctx context.Context, userID int64, in UpdateUserInput) error
	Delete(ctx context.Context, userID int64) error
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, in CreateUserInput) (int64, error) {
	u, err := user.New(in.Name, in.Email)
	if err != nil {
		return 0, err
	}

	// Pre-check outside the transaction; the unique index on email closes
	// the remaining race at insert time.
	if err := uc.assertEmailFree(ctx, u.Email(), 0); err != nil {
		return 0, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Users().Create(ctx, u)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
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

func (uc *userUseCaseImpl) Update(ctx context.Context, userID int64, in UpdateUserInput) error {
	snap, err := requireUser(ctx, uc.uow.CommandReads(), userID)
	if err != nil {
		return err
	}

	name := patch.Coalesce(patch.TrimmedString(in.Name), snap.Name)
	email := patch.Coalesce(patch.TrimmedString(in.Email), snap.Email)

	merged, err := user.Reconstruct(userID, name, email)
	if err != nil {
		return err
	}
	if merged.Email() != snap.Email {
		if err := uc.assertEmailFree(ctx, merged.Email(), userID); err != nil {
			return err
		}
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Users().Update(ctx, userID, merged.Name(), merged.Email()); txErr != nil {
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return errs.Mark(txErr, ErrStorageFailure)
		}
		return nil
	})
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	if _, err := requireUser(ctx, uc.uow.CommandReads(), userID); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Users().Delete(ctx, userID); txErr != nil {
			switch {
			case infra.IsKind(txErr, infra.KindForeignKeyViolated):
				return ErrUserReferenced
			case infra.IsKind(txErr, infra.KindNotFound):
				return ErrUserNotFound
			default:
				return errs.Mark(txErr, ErrStorageFailure)
			}
		}
		return nil
	})
}

func (uc *userUseCaseImpl) assertEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := uc.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

// requireUser is the identity guard: command entry points call it first for
// every user id they receive, so "user not found" wins over later failures.
func requireUser(ctx context.Context, reads shared.CommandReads, id int64) (*shared.UserSnapshot, error) {
	snap, err := reads.UserByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return snap, nil
}
