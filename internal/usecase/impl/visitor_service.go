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

type visitorService struct {
	txManager   repository.TransactionManager
	visitorRepo repository.VisitorRepository
	logger      *slog.Logger
}

// VisitorServiceParams holds dependencies for VisitorService, injected by Fx.
type VisitorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VisitorRepo repository.VisitorRepository
	Logger      *slog.Logger
}

// NewVisitorService is the constructor for visitorService.
func NewVisitorService(params VisitorServiceParams) usecase.VisitorUsecase {
	return &visitorService{
		txManager:   params.TxManager,
		visitorRepo: params.VisitorRepo,
		logger:      params.Logger,
	}
}

// Create registers a visitor, rejecting duplicate document numbers.
func (srv *visitorService) Create(ctx context.Context, input *usecase.VisitorInput) (*entity.Visitor, error) {
	existing, err := srv.visitorRepo.FindByIDNumber(ctx, input.IDNumber)
	if err != nil && !errors.Is(err, repository.ErrVisitorNotFound) {
		return nil, errors.Wrap(err, "failed to check visitor id number uniqueness")
	}
	if existing != nil {
		return nil, errors.Wrap(domainerrors.ErrIDNumberInUse, "visitor id number already registered")
	}

	visitor := &entity.Visitor{
		ID:         uuid.New(),
		FullName:   input.FullName,
		IDNumber:   input.IDNumber,
		Birthday:   input.Birthday,
		Gender:     input.Gender,
		Region:     input.Region,
		ExpireDate: input.ExpireDate,
		Phone:      input.Phone,
		Status:     entity.StatusActive,
	}

	if err := srv.visitorRepo.Create(ctx, visitor); err != nil {
		return nil, errors.Wrap(err, "failed to create visitor")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Visitor created", slog.Any("visitorID", visitor.ID))

	return visitor, nil
}

// Get returns a visitor by ID.
func (srv *visitorService) Get(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	visitor, err := srv.visitorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVisitorNotFound, "visitor lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find visitor by id")
	}

	return visitor, nil
}

// List returns all visitors.
func (srv *visitorService) List(ctx context.Context) ([]*entity.Visitor, error) {
	visitors, err := srv.visitorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitors")
	}

	return visitors, nil
}

// Update replaces a visitor's fields, re-checking the document number.
func (srv *visitorService) Update(ctx context.Context, id uuid.UUID, input *usecase.VisitorInput) (*entity.Visitor, error) {
	var updated *entity.Visitor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitorRepo := repoFactory.NewVisitorRepository()

		visitor, err := visitorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrVisitorNotFound) {
				return errors.Wrap(domainerrors.ErrVisitorNotFound, "visitor lookup failed")
			}

			return errors.Wrap(err, "failed to find visitor by id")
		}

		if input.IDNumber != visitor.IDNumber {
			existing, err := visitorRepo.FindByIDNumber(ctx, input.IDNumber)
			if err != nil && !errors.Is(err, repository.ErrVisitorNotFound) {
				return errors.Wrap(err, "failed to check visitor id number uniqueness")
			}
			if existing != nil {
				return errors.Wrap(domainerrors.ErrIDNumberInUse, "visitor id number already registered")
			}
		}

		visitor.FullName = input.FullName
		visitor.IDNumber = input.IDNumber
		visitor.Birthday = input.Birthday
		visitor.Gender = input.Gender
		visitor.Region = input.Region
		visitor.ExpireDate = input.ExpireDate
		visitor.Phone = input.Phone

		if err := visitorRepo.Update(ctx, visitor); err != nil {
			return errors.Wrap(err, "failed to update visitor")
		}
		updated = visitor

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute visitor update transaction")
	}

	return updated, nil
}

// Delete removes a visitor record entirely.
func (srv *visitorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.visitorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return errors.Wrap(domainerrors.ErrVisitorNotFound, "visitor lookup failed")
		}

		return errors.Wrap(err, "failed to delete visitor")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Visitor deleted", slog.Any("visitorID", id))

	return nil
}

// SetStatus toggles a visitor between active and inactive with the no-op guard.
func (srv *visitorService) SetStatus(ctx context.Context, id uuid.UUID, status entity.Status) (*entity.Visitor, error) {
	var updated *entity.Visitor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		visitorRepo := repoFactory.NewVisitorRepository()

		visitor, err := visitorRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrVisitorNotFound) {
				return errors.Wrap(domainerrors.ErrVisitorNotFound, "visitor lookup failed")
			}

			return errors.Wrap(err, "failed to find visitor by id")
		}

		if err := guardStatusTransition(visitor.Status, status); err != nil {
			return err
		}

		visitor.Status = status
		if err := visitorRepo.Update(ctx, visitor); err != nil {
			return errors.Wrap(err, "failed to update visitor status")
		}
		updated = visitor

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute visitor status transaction")
	}

	return updated, nil
}
