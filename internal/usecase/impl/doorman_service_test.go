package impl

import (
	"context"
	"testing"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	mockRepo "gatedesk/internal/mocks/repository"
	mockSvc "gatedesk/internal/mocks/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doormanServiceForTest(factory *mockRepo.MockRepositoryFactory, userRepo repository.UserRepository, assignmentRepo repository.AssignmentRepository, hasher *mockSvc.MockPasswordHasher) usecase.DoormanUsecase {
	return NewDoormanService(DoormanServiceParams{
		TxManager:      &mockRepo.MockTransactionManager{Factory: factory},
		UserRepo:       userRepo,
		AssignmentRepo: assignmentRepo,
		Hasher:         hasher,
		Logger:         testLogger(),
	})
}

func doormanInput() *usecase.RegisterDoormanInput {
	return &usecase.RegisterDoormanInput{
		FullName: "Dora Mann",
		Email:    "dora@example.com",
		Password: "secret-password",
		Phone:    "+1-555-0101",
		IDNumber: "ID-9001",
	}
}

func TestDoormanService_Register_Success(t *testing.T) {
	registrarID := uuid.New()
	grant := activeGrant(registrarID, 3, 2)

	userRepo := new(mockRepo.MockUserRepository)
	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "dora@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByPhone", mock.Anything, "+1-555-0101").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByIDNumber", mock.Anything, "ID-9001").Return(nil, repository.ErrUserNotFound)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, registrarID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, registrarID, entity.CreditTypeBuilding).Return(int64(1), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, registrarID, entity.CreditTypeUser).Return(int64(1), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	ledgerRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.CreditTransaction")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{
		UserRepo:       userRepo,
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
	}
	svc := doormanServiceForTest(factory, userRepo, nil, hasher)

	out, err := svc.Register(context.Background(), registrarID, doormanInput())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDoorman, out.Doorman.Role)
	assert.Equal(t, "hashed", out.Doorman.PasswordHash)
	require.NotNil(t, out.Doorman.RegistrarID)
	assert.Equal(t, registrarID, *out.Doorman.RegistrarID)
	assert.Equal(t, 2, out.RemainingBuildingCredits)
	assert.Equal(t, 0, out.RemainingUserCredits)
}

func TestDoormanService_Register_DuplicateEmailSpendsNoCredit(t *testing.T) {
	registrarID := uuid.New()

	userRepo := new(mockRepo.MockUserRepository)
	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "dora@example.com").Return(&entity.User{ID: uuid.New(), Email: "dora@example.com"}, nil)

	factory := &mockRepo.MockRepositoryFactory{
		UserRepo:       userRepo,
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
	}
	svc := doormanServiceForTest(factory, userRepo, nil, hasher)

	_, err := svc.Register(context.Background(), registrarID, doormanInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
	grantRepo.AssertNotCalled(t, "FindCurrentActiveForUpdate", mock.Anything, mock.Anything)
	ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestDoormanService_Register_UserCreditExceeded(t *testing.T) {
	registrarID := uuid.New()
	grant := activeGrant(registrarID, 3, 2)

	userRepo := new(mockRepo.MockUserRepository)
	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByPhone", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByIDNumber", mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, registrarID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, registrarID, entity.CreditTypeBuilding).Return(int64(0), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, registrarID, entity.CreditTypeUser).Return(int64(2), nil)

	factory := &mockRepo.MockRepositoryFactory{
		UserRepo:       userRepo,
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
	}
	svc := doormanServiceForTest(factory, userRepo, nil, hasher)

	_, err := svc.Register(context.Background(), registrarID, doormanInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserCreditExceeded)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDoormanService_Get_NotRegistrar(t *testing.T) {
	registrarID := uuid.New()
	otherRegistrar := uuid.New()
	doormanID := uuid.New()

	userRepo := new(mockRepo.MockUserRepository)
	userRepo.On("FindByID", mock.Anything, doormanID).Return(&entity.User{
		ID:          doormanID,
		Role:        entity.RoleDoorman,
		RegistrarID: &otherRegistrar,
	}, nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo}
	svc := doormanServiceForTest(factory, userRepo, new(mockRepo.MockAssignmentRepository), nil)

	_, err := svc.Get(context.Background(), registrarID, doormanID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestDoormanService_List_FiltersByRegistrar(t *testing.T) {
	registrarID := uuid.New()
	otherRegistrar := uuid.New()
	mine := &entity.User{ID: uuid.New(), Role: entity.RoleDoorman, RegistrarID: &registrarID}
	theirs := &entity.User{ID: uuid.New(), Role: entity.RoleDoorman, RegistrarID: &otherRegistrar}

	userRepo := new(mockRepo.MockUserRepository)
	assignmentRepo := new(mockRepo.MockAssignmentRepository)
	userRepo.On("ListByRole", mock.Anything, entity.RoleDoorman).Return([]*entity.User{mine, theirs}, nil)
	assignmentRepo.On("ListByDoorman", mock.Anything, mine.ID).Return([]*entity.DoormanAssignment{}, nil)

	factory := &mockRepo.MockRepositoryFactory{UserRepo: userRepo, AssignmentRepo: assignmentRepo}
	svc := doormanServiceForTest(factory, userRepo, assignmentRepo, nil)

	doormen, err := svc.List(context.Background(), registrarID)
	require.NoError(t, err)
	require.Len(t, doormen, 1)
	assert.Equal(t, mine.ID, doormen[0].Doorman.ID)
	assignmentRepo.AssertNotCalled(t, "ListByDoorman", mock.Anything, theirs.ID)
}
