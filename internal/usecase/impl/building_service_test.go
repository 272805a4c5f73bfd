package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	mockRepo "gatedesk/internal/mocks/repository"
	mockSvc "gatedesk/internal/mocks/service"
	"gatedesk/internal/domain/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeGrant(userID uuid.UUID, buildingCredit, userCredit int) *entity.ActivePlan {
	return &entity.ActivePlan{
		ID:       uuid.New(),
		UserID:   userID,
		PlanID:   uuid.New(),
		Status:   entity.ActivePlanActive,
		IssuedAt: time.Now(),
		Plan: &entity.Plan{
			ID:             uuid.New(),
			Name:           "starter",
			BuildingCredit: buildingCredit,
			UserCredit:     userCredit,
			Status:         entity.StatusActive,
		},
	}
}

func buildingServiceForTest(factory *mockRepo.MockRepositoryFactory, buildingRepo repository.BuildingRepository, qr *mockSvc.MockQRCodeService, storage *mockSvc.MockQRStorage, publisher service.EventPublisher) usecase.BuildingUsecase {
	return NewBuildingService(BuildingServiceParams{
		TxManager:    &mockRepo.MockTransactionManager{Factory: factory},
		BuildingRepo: buildingRepo,
		QRService:    qr,
		QRStorage:    storage,
		Publisher:    publisher,
		Logger:       testLogger(),
	})
}

func TestBuildingService_Create_NoActivePlan(t *testing.T) {
	userID := uuid.New()

	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)
	qrService := new(mockSvc.MockQRCodeService)
	qrStorage := new(mockSvc.MockQRStorage)

	qrService.On("GenerateBuildingQR").Return(&service.BuildingQRCode{UniqueIdentifier: "BLD_0123456789abcdef", Image: []byte{1}}, nil)
	qrStorage.On("SaveImage", mock.Anything, "BLD_0123456789abcdef.png", []byte{1}).Return("https://img/BLD_0123456789abcdef.png", nil)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, userID).Return(nil, repository.ErrActivePlanNotFound)

	factory := &mockRepo.MockRepositoryFactory{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
		BuildingRepo:   buildingRepo,
	}
	svc := buildingServiceForTest(factory, buildingRepo, qrService, qrStorage, nil)

	out, err := svc.Create(context.Background(), userID, &usecase.CreateBuildingInput{Name: "North Tower", Type: entity.BuildingTypeTower})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActivePlan)
	assert.Nil(t, out)
	buildingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestBuildingService_Create_CreditExceeded(t *testing.T) {
	userID := uuid.New()
	grant := activeGrant(userID, 2, 5)

	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)
	qrService := new(mockSvc.MockQRCodeService)
	qrStorage := new(mockSvc.MockQRStorage)

	qrService.On("GenerateBuildingQR").Return(&service.BuildingQRCode{UniqueIdentifier: "BLD_0123456789abcdef", Image: []byte{1}}, nil)
	qrStorage.On("SaveImage", mock.Anything, mock.Anything, mock.Anything).Return("https://img/x.png", nil)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, userID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeBuilding).Return(int64(2), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeUser).Return(int64(0), nil)

	factory := &mockRepo.MockRepositoryFactory{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
		BuildingRepo:   buildingRepo,
	}
	svc := buildingServiceForTest(factory, buildingRepo, qrService, qrStorage, nil)

	_, err := svc.Create(context.Background(), userID, &usecase.CreateBuildingInput{Name: "North Tower", Type: entity.BuildingTypeTower})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBuildingCreditExceeded)
	buildingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestBuildingService_Create_Success(t *testing.T) {
	userID := uuid.New()
	grant := activeGrant(userID, 2, 5)

	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)
	qrService := new(mockSvc.MockQRCodeService)
	qrStorage := new(mockSvc.MockQRStorage)
	publisher := new(mockSvc.MockEventPublisher)

	qrService.On("GenerateBuildingQR").Return(&service.BuildingQRCode{UniqueIdentifier: "BLD_0123456789abcdef", Image: []byte{1, 2}}, nil)
	qrStorage.On("SaveImage", mock.Anything, "BLD_0123456789abcdef.png", []byte{1, 2}).Return("https://img/BLD_0123456789abcdef.png", nil)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, userID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeBuilding).Return(int64(1), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeUser).Return(int64(3), nil)
	buildingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Building")).Return(nil)
	ledgerRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.CreditTransaction")).Return(nil)
	publisher.On("PublishLedgerEvent", mock.Anything, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
		BuildingRepo:   buildingRepo,
	}
	svc := buildingServiceForTest(factory, buildingRepo, qrService, qrStorage, publisher)

	out, err := svc.Create(context.Background(), userID, &usecase.CreateBuildingInput{
		Name:    "North Tower",
		Address: "1 Main St",
		City:    "Springfield",
		Type:    entity.BuildingTypeTower,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, userID, out.Building.UserID)
	assert.Equal(t, "BLD_0123456789abcdef", out.Building.QR.UniqueIdentifier)
	assert.Equal(t, "https://img/BLD_0123456789abcdef.png", out.Building.QR.ImageURL)
	assert.Equal(t, entity.StatusActive, out.Building.Status)
	// quota 2, one already consumed, this creation takes the last credit.
	assert.Equal(t, 0, out.RemainingBuildingCredits)
	assert.Equal(t, 2, out.RemainingUserCredits)
	publisher.AssertCalled(t, "PublishLedgerEvent", mock.Anything, mock.AnythingOfType("*service.LedgerEvent"))
}

func TestBuildingService_Create_LedgerAppendRecorded(t *testing.T) {
	userID := uuid.New()
	grant := activeGrant(userID, 1, 1)

	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)
	qrService := new(mockSvc.MockQRCodeService)
	qrStorage := new(mockSvc.MockQRStorage)

	var appended *entity.CreditTransaction

	qrService.On("GenerateBuildingQR").Return(&service.BuildingQRCode{UniqueIdentifier: "BLD_00000000000000aa", Image: []byte{1}}, nil)
	qrStorage.On("SaveImage", mock.Anything, mock.Anything, mock.Anything).Return("https://img/a.png", nil)
	grantRepo.On("FindCurrentActiveForUpdate", mock.Anything, userID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeBuilding).Return(int64(0), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeUser).Return(int64(0), nil)
	buildingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Building")).Return(nil)
	ledgerRepo.On("Append", mock.Anything, mock.AnythingOfType("*entity.CreditTransaction")).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(*entity.CreditTransaction)
		}).
		Return(nil)

	factory := &mockRepo.MockRepositoryFactory{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
		BuildingRepo:   buildingRepo,
	}
	svc := buildingServiceForTest(factory, buildingRepo, qrService, qrStorage, nil)

	out, err := svc.Create(context.Background(), userID, &usecase.CreateBuildingInput{Name: "Annex", Type: entity.BuildingTypeBuilding})
	require.NoError(t, err)
	require.NotNil(t, appended)
	assert.Equal(t, userID, appended.UserID)
	assert.Equal(t, entity.CreditTypeBuilding, appended.Type)
	assert.Equal(t, entity.CreditActionAdd, appended.Action)
	require.NotNil(t, appended.BuildingID)
	assert.Equal(t, out.Building.ID, *appended.BuildingID)
	assert.False(t, appended.Deleted)
}

func TestBuildingService_Update_NotOwner(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	buildingID := uuid.New()

	buildingRepo := new(mockRepo.MockBuildingRepository)
	buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID, UserID: owner, Status: entity.StatusActive}, nil)

	factory := &mockRepo.MockRepositoryFactory{BuildingRepo: buildingRepo}
	svc := buildingServiceForTest(factory, buildingRepo, nil, nil, nil)

	name := "renamed"
	_, err := svc.Update(context.Background(), other, buildingID, &usecase.UpdateBuildingInput{Name: &name})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	buildingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBuildingService_AdminUpdate_IgnoresOwnership(t *testing.T) {
	owner := uuid.New()
	buildingID := uuid.New()

	buildingRepo := new(mockRepo.MockBuildingRepository)
	buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID, UserID: owner, Name: "old", Status: entity.StatusActive}, nil)
	buildingRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Building")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{BuildingRepo: buildingRepo}
	svc := buildingServiceForTest(factory, buildingRepo, nil, nil, nil)

	name := "renamed"
	updated, err := svc.AdminUpdate(context.Background(), buildingID, &usecase.UpdateBuildingInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestBuildingService_SetStatus_NoOpGuard(t *testing.T) {
	owner := uuid.New()
	buildingID := uuid.New()

	tests := []struct {
		name    string
		current entity.Status
		target  entity.Status
		wantErr error
	}{
		{name: "already active", current: entity.StatusActive, target: entity.StatusActive, wantErr: domainerrors.ErrAlreadyActive},
		{name: "already inactive", current: entity.StatusInactive, target: entity.StatusInactive, wantErr: domainerrors.ErrAlreadyInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildingRepo := new(mockRepo.MockBuildingRepository)
			buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID, UserID: owner, Status: tt.current}, nil)

			factory := &mockRepo.MockRepositoryFactory{BuildingRepo: buildingRepo}
			svc := buildingServiceForTest(factory, buildingRepo, nil, nil, nil)

			_, err := svc.SetStatus(context.Background(), owner, buildingID, tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			buildingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestBuildingService_SetStatus_Toggles(t *testing.T) {
	owner := uuid.New()
	buildingID := uuid.New()

	buildingRepo := new(mockRepo.MockBuildingRepository)
	buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID, UserID: owner, Status: entity.StatusActive}, nil)
	buildingRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Building")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{BuildingRepo: buildingRepo}
	svc := buildingServiceForTest(factory, buildingRepo, nil, nil, nil)

	updated, err := svc.SetStatus(context.Background(), owner, buildingID, entity.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, updated.Status)
}
