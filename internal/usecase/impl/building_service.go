package impl

import (
	"context"
	"log/slog"
	"time"

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

type buildingService struct {
	txManager    repository.TransactionManager
	buildingRepo repository.BuildingRepository
	qrService    service.QRCodeService
	qrStorage    service.QRStorage
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// BuildingServiceParams holds dependencies for BuildingService, injected by Fx.
type BuildingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BuildingRepo repository.BuildingRepository
	QRService    service.QRCodeService
	QRStorage    service.QRStorage
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewBuildingService is the constructor for buildingService.
func NewBuildingService(params BuildingServiceParams) usecase.BuildingUsecase {
	return &buildingService{
		txManager:    params.TxManager,
		buildingRepo: params.BuildingRepo,
		qrService:    params.QRService,
		qrStorage:    params.QRStorage,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *buildingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a building after passing the credit gate. The entitlement
// check, the building insert and the ledger append run in one transaction
// with the active-plan row locked, so two concurrent requests cannot both
// spend the last building credit.
func (srv *buildingService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateBuildingInput) (*usecase.CreateBuildingOutput, error) {
	srv.log(ctx).Info("Creating building", slog.Any("userID", userID), slog.String("name", input.Name))

	// The QR code is minted and uploaded before the transaction. Blob writes
	// cannot roll back with the database; an orphaned image is harmless, a
	// building without its image is not.
	qr, err := srv.qrService.GenerateBuildingQR()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate building QR code")
	}

	imageURL, err := srv.qrStorage.SaveImage(ctx, qr.UniqueIdentifier+".png", qr.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store building QR image")
	}

	var out *usecase.CreateBuildingOutput
	var ledgerRow *entity.CreditTransaction

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ent, err := resolveEntitlement(ctx, repoFactory.NewActivePlanRepository(), repoFactory.NewCreditLedgerRepository(), userID, true)
		if err != nil {
			return err
		}

		if err := gateCredit(ent, entity.CreditTypeBuilding); err != nil {
			srv.log(ctx).Warn("Building creation denied by credit gate", slog.Any("userID", userID), slog.Int("consumed", ent.ConsumedBuilding), slog.Int("quota", ent.Plan.BuildingCredit))

			return err
		}

		building := &entity.Building{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      input.Name,
			Address:   input.Address,
			City:      input.City,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Type:      input.Type,
			Status:    entity.StatusActive,
			QR: entity.BuildingQR{
				UniqueIdentifier: qr.UniqueIdentifier,
				ImageURL:         imageURL,
			},
		}

		if err := repoFactory.NewBuildingRepository().Create(ctx, building); err != nil {
			return errors.Wrap(err, "failed to create building")
		}

		row := &entity.CreditTransaction{
			ID:         uuid.New(),
			UserID:     userID,
			BuildingID: &building.ID,
			Purpose:    "building registration: " + building.Name,
			Type:       entity.CreditTypeBuilding,
			Action:     entity.CreditActionAdd,
			OccurredAt: time.Now(),
		}

		if err := repoFactory.NewCreditLedgerRepository().Append(ctx, row); err != nil {
			return errors.Wrap(err, "failed to append building credit transaction")
		}
		ledgerRow = row

		out = &usecase.CreateBuildingOutput{
			Building:                 building,
			RemainingBuildingCredits: ent.Plan.BuildingCredit - ent.ConsumedBuilding - 1,
			RemainingUserCredits:     ent.Plan.UserCredit - ent.ConsumedUser,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Building creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute building creation transaction")
	}

	publishLedgerEvent(ctx, srv.log(ctx), srv.publisher, service.LedgerEventConsumed, ledgerRow)
	srv.log(ctx).Debug("Building created", slog.Any("buildingID", out.Building.ID), slog.Int("remainingBuildingCredits", out.RemainingBuildingCredits))

	return out, nil
}

// ListOwn returns the requester's buildings.
func (srv *buildingService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Building, error) {
	buildings, err := srv.buildingRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings by owner")
	}

	return buildings, nil
}

// Get returns a building the requester owns.
func (srv *buildingService) Get(ctx context.Context, userID, buildingID uuid.UUID) (*entity.Building, error) {
	return srv.loadOwnedBuilding(ctx, srv.buildingRepo, userID, buildingID)
}

// Update edits a building the requester owns.
func (srv *buildingService) Update(ctx context.Context, userID, buildingID uuid.UUID, input *usecase.UpdateBuildingInput) (*entity.Building, error) {
	var updated *entity.Building

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buildingRepo := repoFactory.NewBuildingRepository()

		building, err := srv.loadOwnedBuilding(ctx, buildingRepo, userID, buildingID)
		if err != nil {
			return err
		}

		applyBuildingUpdate(building, input)

		if err := buildingRepo.Update(ctx, building); err != nil {
			return errors.Wrap(err, "failed to update building")
		}
		updated = building

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute building update transaction")
	}

	return updated, nil
}

// Delete removes a building the requester owns. The ledger row that paid for
// it is left alone; releasing the credit is an explicit ledger soft-delete.
func (srv *buildingService) Delete(ctx context.Context, userID, buildingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buildingRepo := repoFactory.NewBuildingRepository()

		if _, err := srv.loadOwnedBuilding(ctx, buildingRepo, userID, buildingID); err != nil {
			return err
		}

		if err := buildingRepo.Delete(ctx, buildingID); err != nil {
			return errors.Wrap(err, "failed to delete building")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Building deletion failed", slog.Any("buildingID", buildingID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute building deletion transaction")
	}

	return nil
}

// SetStatus toggles a building the requester owns, guarding no-op transitions.
func (srv *buildingService) SetStatus(ctx context.Context, userID, buildingID uuid.UUID, status entity.Status) (*entity.Building, error) {
	return srv.setStatus(ctx, &userID, buildingID, status)
}

// AdminList returns every building regardless of owner.
func (srv *buildingService) AdminList(ctx context.Context) ([]*entity.Building, error) {
	buildings, err := srv.buildingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	return buildings, nil
}

// AdminGet returns any building by ID.
func (srv *buildingService) AdminGet(ctx context.Context, buildingID uuid.UUID) (*entity.Building, error) {
	return srv.loadBuilding(ctx, srv.buildingRepo, buildingID)
}

// AdminUpdate edits any building without an ownership check.
func (srv *buildingService) AdminUpdate(ctx context.Context, buildingID uuid.UUID, input *usecase.UpdateBuildingInput) (*entity.Building, error) {
	var updated *entity.Building

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buildingRepo := repoFactory.NewBuildingRepository()

		building, err := srv.loadBuilding(ctx, buildingRepo, buildingID)
		if err != nil {
			return err
		}

		applyBuildingUpdate(building, input)

		if err := buildingRepo.Update(ctx, building); err != nil {
			return errors.Wrap(err, "failed to update building")
		}
		updated = building

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute building update transaction")
	}

	return updated, nil
}

// AdminDelete removes any building without an ownership check.
func (srv *buildingService) AdminDelete(ctx context.Context, buildingID uuid.UUID) error {
	if _, err := srv.loadBuilding(ctx, srv.buildingRepo, buildingID); err != nil {
		return err
	}

	if err := srv.buildingRepo.Delete(ctx, buildingID); err != nil {
		return errors.Wrap(err, "failed to delete building")
	}

	return nil
}

// AdminSetStatus toggles any building without an ownership check.
func (srv *buildingService) AdminSetStatus(ctx context.Context, buildingID uuid.UUID, status entity.Status) (*entity.Building, error) {
	return srv.setStatus(ctx, nil, buildingID, status)
}

// setStatus applies the status toggle. A nil requester skips the ownership
// check for the admin surface.
func (srv *buildingService) setStatus(ctx context.Context, requester *uuid.UUID, buildingID uuid.UUID, status entity.Status) (*entity.Building, error) {
	var updated *entity.Building

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buildingRepo := repoFactory.NewBuildingRepository()

		var building *entity.Building
		var err error
		if requester != nil {
			building, err = srv.loadOwnedBuilding(ctx, buildingRepo, *requester, buildingID)
		} else {
			building, err = srv.loadBuilding(ctx, buildingRepo, buildingID)
		}
		if err != nil {
			return err
		}

		if err := guardStatusTransition(building.Status, status); err != nil {
			return err
		}

		building.Status = status
		if err := buildingRepo.Update(ctx, building); err != nil {
			return errors.Wrap(err, "failed to update building status")
		}
		updated = building

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute building status transaction")
	}

	return updated, nil
}

func (srv *buildingService) loadBuilding(ctx context.Context, buildingRepo repository.BuildingRepository, buildingID uuid.UUID) (*entity.Building, error) {
	building, err := buildingRepo.FindByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBuildingNotFound, "building lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find building by id")
	}

	return building, nil
}

func (srv *buildingService) loadOwnedBuilding(ctx context.Context, buildingRepo repository.BuildingRepository, userID, buildingID uuid.UUID) (*entity.Building, error) {
	building, err := srv.loadBuilding(ctx, buildingRepo, buildingID)
	if err != nil {
		return nil, err
	}

	// Ownership is enforced independently of role on the app surface.
	if !building.OwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "building is owned by another user")
	}

	return building, nil
}

func applyBuildingUpdate(building *entity.Building, input *usecase.UpdateBuildingInput) {
	if input.Name != nil {
		building.Name = *input.Name
	}
	if input.Address != nil {
		building.Address = *input.Address
	}
	if input.City != nil {
		building.City = *input.City
	}
	if input.Latitude != nil {
		building.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		building.Longitude = *input.Longitude
	}
	if input.Type != nil {
		building.Type = *input.Type
	}
}

// guardStatusTransition rejects toggles that would not change the state.
func guardStatusTransition(current, target entity.Status) error {
	if current != target {
		return nil
	}

	if target == entity.StatusActive {
		return errors.Wrap(domainerrors.ErrAlreadyActive, "status toggle is a no-op")
	}

	return errors.Wrap(domainerrors.ErrAlreadyInactive, "status toggle is a no-op")
}
