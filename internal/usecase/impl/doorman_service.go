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

type doormanService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	hasher         service.PasswordHasher
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// DoormanServiceParams holds dependencies for DoormanService, injected by Fx.
type DoormanServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	AssignmentRepo repository.AssignmentRepository
	Hasher         service.PasswordHasher
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewDoormanService is the constructor for doormanService.
func NewDoormanService(params DoormanServiceParams) usecase.DoormanUsecase {
	return &doormanService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		assignmentRepo: params.AssignmentRepo,
		hasher:         params.Hasher,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *doormanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a doorman account under the registrar's identity. The
// entitlement check, the uniqueness checks, the insert and the ledger append
// run in one transaction; a duplicate never costs a credit.
func (srv *doormanService) Register(ctx context.Context, registrarID uuid.UUID, input *usecase.RegisterDoormanInput) (*usecase.RegisterDoormanOutput, error) {
	srv.log(ctx).Info("Registering doorman", slog.Any("registrarID", registrarID), slog.String("email", input.Email))

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash doorman password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during doorman registration")
	}

	var out *usecase.RegisterDoormanOutput
	var ledgerRow *entity.CreditTransaction

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := checkUserUniqueness(ctx, userRepo, input.Email, input.Phone, input.IDNumber, uuid.Nil); err != nil {
			return err
		}

		ent, err := resolveEntitlement(ctx, repoFactory.NewActivePlanRepository(), repoFactory.NewCreditLedgerRepository(), registrarID, true)
		if err != nil {
			return err
		}

		if err := gateCredit(ent, entity.CreditTypeUser); err != nil {
			srv.log(ctx).Warn("Doorman registration denied by credit gate", slog.Any("registrarID", registrarID), slog.Int("consumed", ent.ConsumedUser), slog.Int("quota", ent.Plan.UserCredit))

			return err
		}

		doorman := &entity.User{
			ID:           uuid.New(),
			FullName:     input.FullName,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Phone:        input.Phone,
			IDNumber:     input.IDNumber,
			City:         input.City,
			Address:      input.Address,
			Role:         entity.RoleDoorman,
			Status:       entity.StatusActive,
			RegistrarID:  &registrarID,
		}

		if err := userRepo.Create(ctx, doorman); err != nil {
			return errors.Wrap(err, "failed to create doorman user")
		}

		row := &entity.CreditTransaction{
			ID:         uuid.New(),
			UserID:     registrarID,
			Purpose:    "doorman registration: " + doorman.Email,
			Type:       entity.CreditTypeUser,
			Action:     entity.CreditActionAdd,
			OccurredAt: time.Now(),
		}

		if err := repoFactory.NewCreditLedgerRepository().Append(ctx, row); err != nil {
			return errors.Wrap(err, "failed to append doorman credit transaction")
		}
		ledgerRow = row

		out = &usecase.RegisterDoormanOutput{
			Doorman:                  doorman,
			RemainingBuildingCredits: ent.Plan.BuildingCredit - ent.ConsumedBuilding,
			RemainingUserCredits:     ent.Plan.UserCredit - ent.ConsumedUser - 1,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Doorman registration failed", slog.Any("registrarID", registrarID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute doorman registration transaction")
	}

	publishLedgerEvent(ctx, srv.log(ctx), srv.publisher, service.LedgerEventConsumed, ledgerRow)
	srv.log(ctx).Debug("Doorman registered", slog.Any("doormanID", out.Doorman.ID))

	return out, nil
}

// List returns the requester's doormen with their active assignments.
func (srv *doormanService) List(ctx context.Context, registrarID uuid.UUID) ([]*usecase.DoormanWithAssignments, error) {
	doormen, err := srv.userRepo.ListByRole(ctx, entity.RoleDoorman)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doormen")
	}

	result := make([]*usecase.DoormanWithAssignments, 0, len(doormen))
	for _, doorman := range doormen {
		if doorman.RegistrarID == nil || *doorman.RegistrarID != registrarID {
			continue
		}

		withAssignments, err := srv.attachAssignments(ctx, doorman)
		if err != nil {
			return nil, err
		}
		result = append(result, withAssignments)
	}

	return result, nil
}

// Get returns a doorman registered by the requester.
func (srv *doormanService) Get(ctx context.Context, registrarID, doormanID uuid.UUID) (*usecase.DoormanWithAssignments, error) {
	doorman, err := srv.loadRegisteredDoorman(ctx, srv.userRepo, registrarID, doormanID)
	if err != nil {
		return nil, err
	}

	return srv.attachAssignments(ctx, doorman)
}

// Update edits a doorman registered by the requester.
func (srv *doormanService) Update(ctx context.Context, registrarID, doormanID uuid.UUID, input *usecase.UpdateDoormanInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		doorman, err := srv.loadRegisteredDoorman(ctx, userRepo, registrarID, doormanID)
		if err != nil {
			return err
		}

		if input.Email != nil && *input.Email != doorman.Email {
			if err := checkUserUniqueness(ctx, userRepo, *input.Email, "", "", doorman.ID); err != nil {
				return err
			}
			doorman.Email = *input.Email
		}
		if input.Phone != nil && *input.Phone != doorman.Phone {
			if err := checkUserUniqueness(ctx, userRepo, "", *input.Phone, "", doorman.ID); err != nil {
				return err
			}
			doorman.Phone = *input.Phone
		}
		if input.FullName != nil {
			doorman.FullName = *input.FullName
		}
		if input.City != nil {
			doorman.City = *input.City
		}
		if input.Address != nil {
			doorman.Address = *input.Address
		}

		if err := userRepo.Update(ctx, doorman); err != nil {
			return errors.Wrap(err, "failed to update doorman")
		}
		updated = doorman

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute doorman update transaction")
	}

	return updated, nil
}

func (srv *doormanService) attachAssignments(ctx context.Context, doorman *entity.User) (*usecase.DoormanWithAssignments, error) {
	assignments, err := srv.assignmentRepo.ListByDoorman(ctx, doorman.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doorman assignments")
	}

	active := make([]*entity.DoormanAssignment, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.Status == entity.StatusActive {
			active = append(active, assignment)
		}
	}

	return &usecase.DoormanWithAssignments{Doorman: doorman, Assignments: active}, nil
}

func (srv *doormanService) loadRegisteredDoorman(ctx context.Context, userRepo repository.UserRepository, registrarID, doormanID uuid.UUID) (*entity.User, error) {
	doorman, err := userRepo.FindByID(ctx, doormanID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDoormanNotFound, "doorman lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find doorman by id")
	}

	if !doorman.IsDoorman() {
		return nil, errors.Wrap(domainerrors.ErrDoormanNotFound, "user does not hold the doorman role")
	}

	// Registrar back-reference is the ownership edge for doormen.
	if doorman.RegistrarID == nil || *doorman.RegistrarID != registrarID {
		return nil, errors.Wrap(domainerrors.ErrNotAuthorized, "doorman is registered under another user")
	}

	return doorman, nil
}

// checkUserUniqueness rejects email, phone and ID number values already held
// by a different user. Empty values are skipped; excludeID ignores the
// record being edited.
func checkUserUniqueness(ctx context.Context, userRepo repository.UserRepository, email, phone, idNumber string, excludeID uuid.UUID) error {
	if email != "" {
		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if existing != nil && existing.ID != excludeID {
			return errors.Wrap(domainerrors.ErrEmailInUse, "email already registered")
		}
	}

	if phone != "" {
		existing, err := userRepo.FindByPhone(ctx, phone)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check phone uniqueness")
		}
		if existing != nil && existing.ID != excludeID {
			return errors.Wrap(domainerrors.ErrPhoneInUse, "phone already registered")
		}
	}

	if idNumber != "" {
		existing, err := userRepo.FindByIDNumber(ctx, idNumber)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check id number uniqueness")
		}
		if existing != nil && existing.ID != excludeID {
			return errors.Wrap(domainerrors.ErrIDNumberInUse, "id number already registered")
		}
	}

	return nil
}
