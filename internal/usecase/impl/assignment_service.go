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

type assignmentService struct {
	txManager      repository.TransactionManager
	assignmentRepo repository.AssignmentRepository
	buildingRepo   repository.BuildingRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// AssignmentServiceParams holds dependencies for AssignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AssignmentRepo repository.AssignmentRepository
	BuildingRepo   repository.BuildingRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewAssignmentService is the constructor for assignmentService.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		txManager:      params.TxManager,
		assignmentRepo: params.AssignmentRepo,
		buildingRepo:   params.BuildingRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign links a doorman to a building the requester owns. An existing
// inactive row is reactivated; an active one fails with AlreadyAssigned.
func (srv *assignmentService) Assign(ctx context.Context, userID uuid.UUID, input *usecase.AssignDoormanInput) (*entity.DoormanAssignment, error) {
	srv.log(ctx).Info("Assigning doorman", slog.Any("buildingID", input.BuildingID), slog.Any("doormanID", input.DoormanID))

	var assignment *entity.DoormanAssignment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkPair(ctx, repoFactory, userID, input); err != nil {
			return err
		}

		assignmentRepo := repoFactory.NewAssignmentRepository()

		existing, err := assignmentRepo.Find(ctx, input.BuildingID, input.DoormanID)
		if err != nil && !errors.Is(err, repository.ErrAssignmentNotFound) {
			return errors.Wrap(err, "failed to find assignment")
		}

		if existing != nil {
			if existing.Status == entity.StatusActive {
				return errors.Wrap(domainerrors.ErrDoormanAlreadyAssigned, "active assignment exists")
			}

			// Reuse the row instead of inserting a duplicate pair.
			if err := assignmentRepo.UpdateStatus(ctx, input.BuildingID, input.DoormanID, entity.StatusActive); err != nil {
				return errors.Wrap(err, "failed to reactivate assignment")
			}
			existing.Status = entity.StatusActive
			assignment = existing

			return nil
		}

		created := &entity.DoormanAssignment{
			ID:         uuid.New(),
			BuildingID: input.BuildingID,
			UserID:     input.DoormanID,
			Status:     entity.StatusActive,
			AssignedAt: time.Now(),
		}

		if err := assignmentRepo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create assignment")
		}
		assignment = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Assignment failed", slog.Any("buildingID", input.BuildingID), slog.Any("doormanID", input.DoormanID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute assignment transaction")
	}

	return assignment, nil
}

// Remove deactivates the link with the no-op guard.
func (srv *assignmentService) Remove(ctx context.Context, userID uuid.UUID, input *usecase.AssignDoormanInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.checkOwnership(ctx, repoFactory.NewBuildingRepository(), userID, input.BuildingID); err != nil {
			return err
		}

		assignmentRepo := repoFactory.NewAssignmentRepository()

		existing, err := assignmentRepo.Find(ctx, input.BuildingID, input.DoormanID)
		if err != nil {
			if errors.Is(err, repository.ErrAssignmentNotFound) {
				return errors.Wrap(domainerrors.ErrAssignmentNotFound, "assignment lookup failed")
			}

			return errors.Wrap(err, "failed to find assignment")
		}

		if existing.Status == entity.StatusInactive {
			return errors.Wrap(domainerrors.ErrAlreadyInactive, "assignment already inactive")
		}

		if err := assignmentRepo.UpdateStatus(ctx, input.BuildingID, input.DoormanID, entity.StatusInactive); err != nil {
			return errors.Wrap(err, "failed to deactivate assignment")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute assignment removal transaction")
	}

	return nil
}

// ListByBuilding returns all links for a building the requester owns.
func (srv *assignmentService) ListByBuilding(ctx context.Context, userID, buildingID uuid.UUID) ([]*entity.DoormanAssignment, error) {
	if err := srv.checkOwnership(ctx, srv.buildingRepo, userID, buildingID); err != nil {
		return nil, err
	}

	assignments, err := srv.assignmentRepo.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments by building")
	}

	return assignments, nil
}

// Get returns the link for a building and doorman pair.
func (srv *assignmentService) Get(ctx context.Context, userID uuid.UUID, buildingID, doormanID uuid.UUID) (*entity.DoormanAssignment, error) {
	if err := srv.checkOwnership(ctx, srv.buildingRepo, userID, buildingID); err != nil {
		return nil, err
	}

	assignment, err := srv.assignmentRepo.Find(ctx, buildingID, doormanID)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAssignmentNotFound, "assignment lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find assignment")
	}

	return assignment, nil
}

// checkPair validates building ownership and the doorman role before an
// assignment is written.
func (srv *assignmentService) checkPair(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, input *usecase.AssignDoormanInput) error {
	if err := srv.checkOwnership(ctx, repoFactory.NewBuildingRepository(), userID, input.BuildingID); err != nil {
		return err
	}

	doorman, err := repoFactory.NewUserRepository().FindByID(ctx, input.DoormanID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrDoormanNotFound, "doorman lookup failed")
		}

		return errors.Wrap(err, "failed to find doorman by id")
	}

	if !doorman.IsDoorman() {
		return errors.Wrap(domainerrors.ErrInvalidDoorman, "target user is not a doorman")
	}

	return nil
}

func (srv *assignmentService) checkOwnership(ctx context.Context, buildingRepo repository.BuildingRepository, userID, buildingID uuid.UUID) error {
	building, err := buildingRepo.FindByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return errors.Wrap(domainerrors.ErrBuildingNotFound, "building lookup failed")
		}

		return errors.Wrap(err, "failed to find building by id")
	}

	if !building.OwnedBy(userID) {
		return errors.Wrap(domainerrors.ErrNotAuthorized, "building is owned by another user")
	}

	return nil
}
