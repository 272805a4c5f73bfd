package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatedesk/internal/delivery/context"
	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type activePlanService struct {
	txManager      repository.TransactionManager
	activePlanRepo repository.ActivePlanRepository
	planRepo       repository.PlanRepository
	logger         *slog.Logger
}

// ActivePlanServiceParams holds dependencies for ActivePlanService, injected by Fx.
type ActivePlanServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ActivePlanRepo repository.ActivePlanRepository
	PlanRepo       repository.PlanRepository
	Logger         *slog.Logger
}

// NewActivePlanService is the constructor for activePlanService.
func NewActivePlanService(params ActivePlanServiceParams) usecase.ActivePlanUsecase {
	return &activePlanService{
		txManager:      params.TxManager,
		activePlanRepo: params.ActivePlanRepo,
		planRepo:       params.PlanRepo,
		logger:         params.Logger,
	}
}

func (srv *activePlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe creates a pending grant of the plan for the requester. No
// payment is captured here; promotion to active belongs to billing.
func (srv *activePlanService) Subscribe(ctx context.Context, userID, planID uuid.UUID) (*entity.ActivePlan, error) {
	srv.log(ctx).Info("Creating plan grant", slog.Any("userID", userID), slog.Any("planID", planID))

	plan, err := srv.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	if plan.Status != entity.StatusActive {
		return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "plan is not open for subscription")
	}

	grant := &entity.ActivePlan{
		ID:       uuid.New(),
		UserID:   userID,
		PlanID:   planID,
		Status:   entity.ActivePlanPending,
		IssuedAt: time.Now(),
		Plan:     plan,
	}

	if err := srv.activePlanRepo.Create(ctx, grant); err != nil {
		return nil, errors.Wrap(err, "failed to create plan grant")
	}

	return grant, nil
}

// ListOwn returns all grants ever issued to the requester.
func (srv *activePlanService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.ActivePlan, error) {
	grants, err := srv.activePlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plan grants")
	}

	return grants, nil
}

// Get returns a grant the requester owns.
func (srv *activePlanService) Get(ctx context.Context, userID, grantID uuid.UUID) (*entity.ActivePlan, error) {
	grant, err := srv.loadGrant(ctx, grantID)
	if err != nil {
		return nil, err
	}

	if grant.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "grant belongs to another user")
	}

	return grant, nil
}

// Cancel transitions the grant to cancelled. Owner-only regardless of role.
func (srv *activePlanService) Cancel(ctx context.Context, userID, grantID uuid.UUID) (*entity.ActivePlan, error) {
	var cancelled *entity.ActivePlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		grantRepo := repoFactory.NewActivePlanRepository()

		grant, err := grantRepo.FindByID(ctx, grantID)
		if err != nil {
			if errors.Is(err, repository.ErrActivePlanNotFound) {
				return errors.Wrap(domainerrors.ErrActivePlanNotFound, "grant lookup failed")
			}

			return errors.Wrap(err, "failed to find plan grant by id")
		}

		if grant.UserID != userID {
			return errors.Wrap(domainerrors.ErrNotAuthorized, "grant belongs to another user")
		}

		if grant.Status == entity.ActivePlanExpired || grant.Status == entity.ActivePlanCancelled {
			return errors.Wrap(domainerrors.ErrAlreadyInactive, "grant already closed")
		}

		if err := grantRepo.UpdateStatus(ctx, grantID, entity.ActivePlanCancelled); err != nil {
			return errors.Wrap(err, "failed to cancel plan grant")
		}

		grant.Status = entity.ActivePlanCancelled
		cancelled = grant

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Grant cancellation failed", slog.Any("grantID", grantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute grant cancellation transaction")
	}

	return cancelled, nil
}

// ActivateGrant promotes a pending grant to active.
func (srv *activePlanService) ActivateGrant(ctx context.Context, grantID uuid.UUID) (*entity.ActivePlan, error) {
	return srv.transition(ctx, grantID, entity.ActivePlanPending, entity.ActivePlanActive)
}

// ExpireGrant transitions an active grant to expired.
func (srv *activePlanService) ExpireGrant(ctx context.Context, grantID uuid.UUID) (*entity.ActivePlan, error) {
	return srv.transition(ctx, grantID, entity.ActivePlanActive, entity.ActivePlanExpired)
}

func (srv *activePlanService) transition(ctx context.Context, grantID uuid.UUID, from, to entity.ActivePlanStatus) (*entity.ActivePlan, error) {
	var updated *entity.ActivePlan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		grantRepo := repoFactory.NewActivePlanRepository()

		grant, err := grantRepo.FindByID(ctx, grantID)
		if err != nil {
			if errors.Is(err, repository.ErrActivePlanNotFound) {
				return errors.Wrap(domainerrors.ErrActivePlanNotFound, "grant lookup failed")
			}

			return errors.Wrap(err, "failed to find plan grant by id")
		}

		if grant.Status != from {
			return errors.Wrap(domainerrors.ErrValidationFailed, "grant is not in the required state")
		}

		if err := grantRepo.UpdateStatus(ctx, grantID, to); err != nil {
			return errors.Wrap(err, "failed to update grant status")
		}

		grant.Status = to
		updated = grant

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute grant transition transaction")
	}

	srv.log(ctx).Info("Grant transitioned", slog.Any("grantID", grantID), slog.String("status", to.String()))

	return updated, nil
}

func (srv *activePlanService) loadGrant(ctx context.Context, grantID uuid.UUID) (*entity.ActivePlan, error) {
	grant, err := srv.activePlanRepo.FindByID(ctx, grantID)
	if err != nil {
		if errors.Is(err, repository.ErrActivePlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivePlanNotFound, "grant lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find plan grant by id")
	}

	return grant, nil
}
