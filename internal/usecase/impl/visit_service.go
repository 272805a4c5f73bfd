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

type visitService struct {
	txManager    repository.TransactionManager
	visitRepo    repository.VisitRepository
	visitorRepo  repository.VisitorRepository
	buildingRepo repository.BuildingRepository
	logger       *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VisitRepo    repository.VisitRepository
	VisitorRepo  repository.VisitorRepository
	BuildingRepo repository.BuildingRepository
	Logger       *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager:    params.TxManager,
		visitRepo:    params.VisitRepo,
		visitorRepo:  params.VisitorRepo,
		buildingRepo: params.BuildingRepo,
		logger:       params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create checks a visitor in. The unique index on (building, visitor,
// check-in date) backs the duplicate rejection.
func (srv *visitService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateVisitInput) (*entity.Visit, error) {
	srv.log(ctx).Info("Recording visit", slog.Any("buildingID", input.BuildingID), slog.Any("visitorID", input.VisitorID))

	var visit *entity.Visit

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewVisitorRepository().FindByID(ctx, input.VisitorID); err != nil {
			if errors.Is(err, repository.ErrVisitorNotFound) {
				return errors.Wrap(domainerrors.ErrVisitorNotFound, "visit references an unknown visitor")
			}

			return errors.Wrap(err, "failed to find visitor by id")
		}

		if _, err := repoFactory.NewBuildingRepository().FindByID(ctx, input.BuildingID); err != nil {
			if errors.Is(err, repository.ErrBuildingNotFound) {
				return errors.Wrap(domainerrors.ErrBuildingNotFound, "visit references an unknown building")
			}

			return errors.Wrap(err, "failed to find building by id")
		}

		checkIn := input.CheckInDate
		if checkIn.IsZero() {
			checkIn = time.Now()
		}

		created := &entity.Visit{
			ID:          uuid.New(),
			BuildingID:  input.BuildingID,
			UserID:      userID,
			VisitorID:   input.VisitorID,
			Purpose:     input.Purpose,
			Unit:        input.Unit,
			CheckInDate: checkIn,
			Status:      entity.VisitPending,
		}

		if err := repoFactory.NewVisitRepository().Create(ctx, created); err != nil {
			if errors.Is(err, repository.ErrVisitAlreadyExists) {
				return errors.Wrap(domainerrors.ErrDuplicateVisit, "visitor already checked in at this building on this date")
			}

			return errors.Wrap(err, "failed to create visit")
		}
		visit = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Visit creation failed", slog.Any("visitorID", input.VisitorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit creation transaction")
	}

	return visit, nil
}

// List returns visits matching the filter, newest check-in first.
func (srv *visitService) List(ctx context.Context, input *usecase.ListVisitsInput) ([]*entity.Visit, error) {
	filter := repository.VisitFilter{}
	if input != nil {
		filter.BuildingID = input.BuildingID
		filter.VisitorID = input.VisitorID
		filter.Status = input.Status
		filter.From = input.From
		filter.To = input.To
	}

	visits, err := srv.visitRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

// Get returns a visit by ID.
func (srv *visitService) Get(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.visitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVisitNotFound, "visit lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find visit by id")
	}

	return visit, nil
}

// Update edits the free-text fields of a visit.
func (srv *visitService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateVisitInput) (*entity.Visit, error) {
	var updated *entity.Visit

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitRepo := repoFactory.NewVisitRepository()

		visit, err := visitRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrVisitNotFound) {
				return errors.Wrap(domainerrors.ErrVisitNotFound, "visit lookup failed")
			}

			return errors.Wrap(err, "failed to find visit by id")
		}

		if input.Purpose != nil {
			visit.Purpose = *input.Purpose
		}
		if input.Unit != nil {
			visit.Unit = *input.Unit
		}

		if err := visitRepo.Update(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to update visit")
		}
		updated = visit

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute visit update transaction")
	}

	return updated, nil
}

// Complete marks the visit completed and stamps the check-out time.
// Delete removes a visit record entirely.
func (srv *visitService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.visitRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return errors.Wrap(domainerrors.ErrVisitNotFound, "visit lookup failed")
		}

		return errors.Wrap(err, "failed to delete visit")
	}

	srv.log(ctx).Info("Visit deleted", slog.Any("visitID", id))

	return nil
}

func (srv *visitService) Complete(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	return srv.close(ctx, id, entity.VisitCompleted)
}

// Cancel marks the visit cancelled without touching the check-out time.
func (srv *visitService) Cancel(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	return srv.close(ctx, id, entity.VisitCancelled)
}

func (srv *visitService) close(ctx context.Context, id uuid.UUID, target entity.VisitStatus) (*entity.Visit, error) {
	var closed *entity.Visit

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitRepo := repoFactory.NewVisitRepository()

		visit, err := visitRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrVisitNotFound) {
				return errors.Wrap(domainerrors.ErrVisitNotFound, "visit lookup failed")
			}

			return errors.Wrap(err, "failed to find visit by id")
		}

		if visit.Status.Terminal() {
			return errors.Wrap(domainerrors.ErrVisitAlreadyClosed, "visit already reached a terminal state")
		}

		visit.Status = target
		if target == entity.VisitCompleted {
			now := time.Now()
			visit.CheckOutDate = &now
		}

		if err := visitRepo.Update(ctx, visit); err != nil {
			return errors.Wrap(err, "failed to close visit")
		}
		closed = visit

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Visit close failed", slog.Any("visitID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit close transaction")
	}

	return closed, nil
}
