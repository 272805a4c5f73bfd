package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatedesk/internal/delivery/context"
	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/domain/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ledgerService struct {
	ledgerRepo repository.CreditLedgerRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	LedgerRepo repository.CreditLedgerRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		ledgerRepo: params.LedgerRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns ledger rows newest first.
func (srv *ledgerService) List(ctx context.Context, input *usecase.ListLedgerInput) ([]*entity.CreditTransaction, error) {
	filter := repository.CreditLedgerFilter{}
	if input != nil {
		filter.UserID = input.UserID
		filter.Type = input.Type
		filter.IncludeDeleted = input.IncludeDeleted
	}

	rows, err := srv.ledgerRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credit transactions")
	}

	return rows, nil
}

// Get returns a live ledger row. Deleted rows behave as absent.
func (srv *ledgerService) Get(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	row, err := srv.ledgerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCreditTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCreditTransactionNotFound, "credit transaction lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find credit transaction by id")
	}

	if row.Deleted {
		return nil, errors.Wrap(domainerrors.ErrCreditTransactionNotFound, "credit transaction is deleted")
	}

	return row, nil
}

// SoftDelete marks a row deleted, releasing the credit it consumed. The next
// entitlement check recomputes the count and sees the credit freed.
func (srv *ledgerService) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	row, err := srv.ledgerRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCreditTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCreditTransactionNotFound, "row missing or already deleted")
		}

		return nil, errors.Wrap(err, "failed to soft delete credit transaction")
	}

	srv.log(ctx).Info("Credit transaction soft deleted", slog.Any("transactionID", id))
	publishLedgerEvent(ctx, srv.log(ctx), srv.publisher, service.LedgerEventDeleted, row)

	return row, nil
}

// ListOwn returns the requester's own ledger rows.
func (srv *ledgerService) ListOwn(ctx context.Context, userID uuid.UUID, input *usecase.ListLedgerInput) ([]*entity.CreditTransaction, error) {
	scoped := usecase.ListLedgerInput{UserID: &userID}
	if input != nil {
		scoped.Type = input.Type
		scoped.IncludeDeleted = input.IncludeDeleted
	}

	return srv.List(ctx, &scoped)
}

// GetOwn returns one of the requester's live rows. Foreign rows behave as
// absent rather than forbidden, hiding their existence.
func (srv *ledgerService) GetOwn(ctx context.Context, userID, id uuid.UUID) (*entity.CreditTransaction, error) {
	row, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if row.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrCreditTransactionNotFound, "credit transaction owned by another user")
	}

	return row, nil
}

// SoftDeleteOwn releases a credit the requester consumed.
func (srv *ledgerService) SoftDeleteOwn(ctx context.Context, userID, id uuid.UUID) (*entity.CreditTransaction, error) {
	if _, err := srv.GetOwn(ctx, userID, id); err != nil {
		return nil, err
	}

	return srv.SoftDelete(ctx, id)
}

// Restore clears the deleted flag, re-consuming the credit.
func (srv *ledgerService) Restore(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	row, err := srv.ledgerRepo.Restore(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCreditTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCreditTransactionNotFound, "row missing or not deleted")
		}

		return nil, errors.Wrap(err, "failed to restore credit transaction")
	}

	srv.log(ctx).Info("Credit transaction restored", slog.Any("transactionID", id))
	publishLedgerEvent(ctx, srv.log(ctx), srv.publisher, service.LedgerEventRestored, row)

	return row, nil
}
