package impl

import (
	"context"
	"testing"
	"time"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	mockRepo "gatedesk/internal/mocks/repository"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func visitServiceForTest(factory *mockRepo.MockRepositoryFactory) usecase.VisitUsecase {
	return NewVisitService(VisitServiceParams{
		TxManager:    &mockRepo.MockTransactionManager{Factory: factory},
		VisitRepo:    factory.VisitRepo,
		VisitorRepo:  factory.VisitorRepo,
		BuildingRepo: factory.BuildingRepo,
		Logger:       testLogger(),
	})
}

func TestVisitService_Create_Success(t *testing.T) {
	userID := uuid.New()
	buildingID := uuid.New()
	visitorID := uuid.New()

	visitRepo := new(mockRepo.MockVisitRepository)
	visitorRepo := new(mockRepo.MockVisitorRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)

	visitorRepo.On("FindByID", mock.Anything, visitorID).Return(&entity.Visitor{ID: visitorID, Status: entity.StatusActive}, nil)
	buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID, Status: entity.StatusActive}, nil)
	visitRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{
		VisitRepo:    visitRepo,
		VisitorRepo:  visitorRepo,
		BuildingRepo: buildingRepo,
	}
	svc := visitServiceForTest(factory)

	visit, err := svc.Create(context.Background(), userID, &usecase.CreateVisitInput{
		BuildingID: buildingID,
		VisitorID:  visitorID,
		Purpose:    "delivery",
		Unit:       "4B",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitPending, visit.Status)
	assert.Equal(t, userID, visit.UserID)
	assert.False(t, visit.CheckInDate.IsZero())
	assert.Nil(t, visit.CheckOutDate)
}

func TestVisitService_Create_DuplicateTuple(t *testing.T) {
	buildingID := uuid.New()
	visitorID := uuid.New()

	visitRepo := new(mockRepo.MockVisitRepository)
	visitorRepo := new(mockRepo.MockVisitorRepository)
	buildingRepo := new(mockRepo.MockBuildingRepository)

	visitorRepo.On("FindByID", mock.Anything, visitorID).Return(&entity.Visitor{ID: visitorID}, nil)
	buildingRepo.On("FindByID", mock.Anything, buildingID).Return(&entity.Building{ID: buildingID}, nil)
	visitRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(repository.ErrVisitAlreadyExists)

	factory := &mockRepo.MockRepositoryFactory{
		VisitRepo:    visitRepo,
		VisitorRepo:  visitorRepo,
		BuildingRepo: buildingRepo,
	}
	svc := visitServiceForTest(factory)

	_, err := svc.Create(context.Background(), uuid.New(), &usecase.CreateVisitInput{
		BuildingID:  buildingID,
		VisitorID:   visitorID,
		CheckInDate: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateVisit)
}

func TestVisitService_Create_UnknownVisitor(t *testing.T) {
	visitorID := uuid.New()

	visitRepo := new(mockRepo.MockVisitRepository)
	visitorRepo := new(mockRepo.MockVisitorRepository)
	visitorRepo.On("FindByID", mock.Anything, visitorID).Return(nil, repository.ErrVisitorNotFound)

	factory := &mockRepo.MockRepositoryFactory{
		VisitRepo:    visitRepo,
		VisitorRepo:  visitorRepo,
		BuildingRepo: new(mockRepo.MockBuildingRepository),
	}
	svc := visitServiceForTest(factory)

	_, err := svc.Create(context.Background(), uuid.New(), &usecase.CreateVisitInput{
		BuildingID: uuid.New(),
		VisitorID:  visitorID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVisitorNotFound)
	visitRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVisitService_Complete_StampsCheckOut(t *testing.T) {
	visit := &entity.Visit{
		ID:          uuid.New(),
		BuildingID:  uuid.New(),
		VisitorID:   uuid.New(),
		Status:      entity.VisitPending,
		CheckInDate: time.Now().Add(-time.Hour),
	}

	visitRepo := new(mockRepo.MockVisitRepository)
	visitRepo.On("FindByID", mock.Anything, visit.ID).Return(visit, nil)
	visitRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{VisitRepo: visitRepo}
	svc := visitServiceForTest(factory)

	closed, err := svc.Complete(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitCompleted, closed.Status)
	require.NotNil(t, closed.CheckOutDate)
	assert.WithinDuration(t, time.Now(), *closed.CheckOutDate, 5*time.Second)
}

func TestVisitService_Cancel_LeavesCheckOutEmpty(t *testing.T) {
	visit := &entity.Visit{
		ID:          uuid.New(),
		Status:      entity.VisitPending,
		CheckInDate: time.Now(),
	}

	visitRepo := new(mockRepo.MockVisitRepository)
	visitRepo.On("FindByID", mock.Anything, visit.ID).Return(visit, nil)
	visitRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Visit")).Return(nil)

	factory := &mockRepo.MockRepositoryFactory{VisitRepo: visitRepo}
	svc := visitServiceForTest(factory)

	closed, err := svc.Cancel(context.Background(), visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitCancelled, closed.Status)
	assert.Nil(t, closed.CheckOutDate)
}

func TestVisitService_Close_TerminalVisit(t *testing.T) {
	for _, status := range []entity.VisitStatus{entity.VisitCompleted, entity.VisitCancelled} {
		t.Run(string(status), func(t *testing.T) {
			visit := &entity.Visit{ID: uuid.New(), Status: status, CheckInDate: time.Now()}

			visitRepo := new(mockRepo.MockVisitRepository)
			visitRepo.On("FindByID", mock.Anything, visit.ID).Return(visit, nil)

			factory := &mockRepo.MockRepositoryFactory{VisitRepo: visitRepo}
			svc := visitServiceForTest(factory)

			_, err := svc.Complete(context.Background(), visit.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrVisitAlreadyClosed)
			visitRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestVisitService_Delete(t *testing.T) {
	id := uuid.New()

	visitRepo := new(mockRepo.MockVisitRepository)
	visitRepo.On("Delete", mock.Anything, id).Return(nil)

	svc := visitServiceForTest(&mockRepo.MockRepositoryFactory{VisitRepo: visitRepo})

	require.NoError(t, svc.Delete(context.Background(), id))
	visitRepo.AssertExpectations(t)
}

func TestVisitService_Delete_Missing(t *testing.T) {
	id := uuid.New()

	visitRepo := new(mockRepo.MockVisitRepository)
	visitRepo.On("Delete", mock.Anything, id).Return(repository.ErrVisitNotFound)

	svc := visitServiceForTest(&mockRepo.MockRepositoryFactory{VisitRepo: visitRepo})

	err := svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
}
