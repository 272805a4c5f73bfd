// Package impl contains the implementation of the application's business logic.
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

// resolveEntitlement loads the user's current active grant and both consumed
// counts. With forUpdate set the grant row is locked for the surrounding
// transaction, serializing concurrent credit consumption for the user.
func resolveEntitlement(
	ctx context.Context,
	grants repository.ActivePlanRepository,
	ledger repository.CreditLedgerRepository,
	userID uuid.UUID,
	forUpdate bool,
) (*entity.Entitlement, error) {
	var grant *entity.ActivePlan
	var err error

	if forUpdate {
		grant, err = grants.FindCurrentActiveForUpdate(ctx, userID)
	} else {
		grant, err = grants.FindCurrentActive(ctx, userID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrActivePlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoActivePlan, "no active grant for user")
		}

		return nil, errors.Wrap(err, "failed to find current active plan")
	}

	if grant.Plan == nil {
		return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "grant references a missing plan")
	}

	consumedBuilding, err := ledger.CountConsumed(ctx, userID, entity.CreditTypeBuilding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count consumed building credits")
	}

	consumedUser, err := ledger.CountConsumed(ctx, userID, entity.CreditTypeUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count consumed user credits")
	}

	return &entity.Entitlement{
		ActivePlan:       grant,
		Plan:             grant.Plan,
		ConsumedBuilding: int(consumedBuilding),
		ConsumedUser:     int(consumedUser),
	}, nil
}

// gateCredit rejects the consumption when the quota for the kind is exhausted.
func gateCredit(ent *entity.Entitlement, kind entity.CreditType) error {
	if ent.Consumed(kind) >= ent.Plan.QuotaFor(kind) {
		if kind == entity.CreditTypeBuilding {
			return errors.Wrap(domainerrors.ErrBuildingCreditExceeded, "building quota exhausted")
		}

		return errors.Wrap(domainerrors.ErrUserCreditExceeded, "user quota exhausted")
	}

	return nil
}

// publishLedgerEvent emits a best-effort audit event for a ledger mutation.
// Publish failures are logged, never surfaced to the caller.
func publishLedgerEvent(ctx context.Context, logger *slog.Logger, publisher service.EventPublisher, eventName string, row *entity.CreditTransaction) {
	if publisher == nil || row == nil {
		return
	}

	event := &service.LedgerEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Event:         eventName,
		TransactionID: row.ID.String(),
		UserID:        row.UserID.String(),
		Type:          row.Type.String(),
		Action:        row.Action.String(),
		Purpose:       row.Purpose,
		OccurredAt:    row.OccurredAt,
	}
	if row.BuildingID != nil {
		event.BuildingID = row.BuildingID.String()
	}

	if err := publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish ledger event", slog.String("event", eventName), slog.Any("transactionID", row.ID), slog.Any("error", err))
	}
}

type entitlementService struct {
	activePlanRepo repository.ActivePlanRepository
	ledgerRepo     repository.CreditLedgerRepository
	logger         *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	ActivePlanRepo repository.ActivePlanRepository
	LedgerRepo     repository.CreditLedgerRepository
	Logger         *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		activePlanRepo: params.ActivePlanRepo,
		ledgerRepo:     params.LedgerRepo,
		logger:         params.Logger,
	}
}

// Resolve returns the requester's entitlement computed from live ledger counts.
func (srv *entitlementService) Resolve(ctx context.Context, userID uuid.UUID) (*entity.Entitlement, error) {
	ent, err := resolveEntitlement(ctx, srv.activePlanRepo, srv.ledgerRepo, userID, false)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Entitlement resolution failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return ent, nil
}
