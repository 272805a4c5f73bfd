package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatedesk/internal/delivery/context"
	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type planService struct {
	txManager repository.TransactionManager
	planRepo  repository.PlanRepository
	logger    *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PlanRepo  repository.PlanRepository
	Logger    *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		txManager: params.TxManager,
		planRepo:  params.PlanRepo,
		logger:    params.Logger,
	}
}

// ListActivePlans returns plans subscribers may purchase.
func (srv *planService) ListActivePlans(ctx context.Context) ([]*entity.Plan, error) {
	active := entity.StatusActive

	plans, err := srv.planRepo.List(ctx, &active)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active plans")
	}

	return plans, nil
}

// ListPlans returns the whole catalog.
func (srv *planService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	plans, err := srv.planRepo.List(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// GetPlan returns a plan by ID.
func (srv *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	plan, err := srv.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find plan by id")
	}

	return plan, nil
}

// CreatePlan adds a catalog entry.
func (srv *planService) CreatePlan(ctx context.Context, input *usecase.PlanInput) (*entity.Plan, error) {
	plan := &entity.Plan{
		ID:             uuid.New(),
		Name:           input.Name,
		BuildingCredit: input.BuildingCredit,
		UserCredit:     input.UserCredit,
		MonthlyVisits:  input.MonthlyVisits,
		Price:          input.Price,
		Status:         entity.StatusActive,
	}

	if err := srv.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Plan created", slog.Any("planID", plan.ID), slog.String("name", plan.Name))

	return plan, nil
}

// UpdatePlan replaces a plan's fields. Grants already issued keep pointing
// at the same row, so quota changes apply to future entitlement checks.
func (srv *planService) UpdatePlan(ctx context.Context, id uuid.UUID, input *usecase.PlanInput) (*entity.Plan, error) {
	var updated *entity.Plan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.NewPlanRepository()

		plan, err := planRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPlanNotFound) {
				return errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup failed")
			}

			return errors.Wrap(err, "failed to find plan by id")
		}

		plan.Name = input.Name
		plan.BuildingCredit = input.BuildingCredit
		plan.UserCredit = input.UserCredit
		plan.MonthlyVisits = input.MonthlyVisits
		plan.Price = input.Price

		if err := planRepo.Update(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to update plan")
		}
		updated = plan

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan update transaction")
	}

	return updated, nil
}

// DeletePlan removes a plan permanently.
func (srv *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.GetPlan(ctx, id); err != nil {
		return err
	}

	if err := srv.planRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete plan")
	}

	return nil
}

// SetPlanStatus toggles a plan between active and inactive with the no-op guard.
func (srv *planService) SetPlanStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Plan, error) {
	var updated *entity.Plan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.NewPlanRepository()

		plan, err := planRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPlanNotFound) {
				return errors.Wrap(domainerrors.ErrPlanNotFound, "plan lookup failed")
			}

			return errors.Wrap(err, "failed to find plan by id")
		}

		if err := guardStatusTransition(plan.Status, status); err != nil {
			return err
		}

		plan.Status = status
		if err := planRepo.Update(ctx, plan); err != nil {
			return errors.Wrap(err, "failed to update plan status")
		}
		updated = plan

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute plan status transaction")
	}

	return updated, nil
}
