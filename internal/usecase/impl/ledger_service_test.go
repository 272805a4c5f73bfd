package impl

import (
	"context"
	"testing"
	"time"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	"gatedesk/internal/domain/service"
	mockRepo "gatedesk/internal/mocks/repository"
	mockSvc "gatedesk/internal/mocks/service"
	"gatedesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ledgerRow(userID uuid.UUID, deleted bool) *entity.CreditTransaction {
	return &entity.CreditTransaction{
		ID:         uuid.New(),
		UserID:     userID,
		Purpose:    "building registration: Annex",
		Type:       entity.CreditTypeBuilding,
		Action:     entity.CreditActionAdd,
		Deleted:    deleted,
		OccurredAt: time.Now(),
	}
}

func TestLedgerService_Get_DeletedBehavesAbsent(t *testing.T) {
	row := ledgerRow(uuid.New(), true)

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	_, err := svc.Get(context.Background(), row.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreditTransactionNotFound)
}

func TestLedgerService_SoftDelete_PublishesEvent(t *testing.T) {
	row := ledgerRow(uuid.New(), true)

	repo := new(mockRepo.MockCreditLedgerRepository)
	publisher := new(mockSvc.MockEventPublisher)
	repo.On("SoftDelete", mock.Anything, row.ID).Return(row, nil)

	var published *service.LedgerEvent
	publisher.On("PublishLedgerEvent", mock.Anything, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.LedgerEvent)
		}).
		Return(nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Publisher: publisher, Logger: testLogger()})

	got, err := svc.SoftDelete(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, row, got)
	require.NotNil(t, published)
	assert.Equal(t, service.LedgerEventDeleted, published.Event)
	assert.Equal(t, row.ID.String(), published.TransactionID)
}

func TestLedgerService_SoftDelete_MissingRow(t *testing.T) {
	id := uuid.New()

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("SoftDelete", mock.Anything, id).Return(nil, repository.ErrCreditTransactionNotFound)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	_, err := svc.SoftDelete(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreditTransactionNotFound)
}

func TestLedgerService_Restore_PublishesEvent(t *testing.T) {
	row := ledgerRow(uuid.New(), false)

	repo := new(mockRepo.MockCreditLedgerRepository)
	publisher := new(mockSvc.MockEventPublisher)
	repo.On("Restore", mock.Anything, row.ID).Return(row, nil)

	var published *service.LedgerEvent
	publisher.On("PublishLedgerEvent", mock.Anything, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.LedgerEvent)
		}).
		Return(nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Publisher: publisher, Logger: testLogger()})

	got, err := svc.Restore(context.Background(), row.ID)
	require.NoError(t, err)
	assert.False(t, got.Deleted)
	require.NotNil(t, published)
	assert.Equal(t, service.LedgerEventRestored, published.Event)
}

func TestLedgerService_Restore_NotDeleted(t *testing.T) {
	id := uuid.New()

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("Restore", mock.Anything, id).Return(nil, repository.ErrCreditTransactionNotFound)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	_, err := svc.Restore(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreditTransactionNotFound)
}

func TestLedgerService_List_PassesFilter(t *testing.T) {
	userID := uuid.New()
	creditType := entity.CreditTypeUser

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("List", mock.Anything, repository.CreditLedgerFilter{
		UserID:         &userID,
		Type:           &creditType,
		IncludeDeleted: true,
	}).Return([]*entity.CreditTransaction{ledgerRow(userID, false)}, nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	rows, err := svc.List(context.Background(), &usecase.ListLedgerInput{
		UserID:         &userID,
		Type:           &creditType,
		IncludeDeleted: true,
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLedgerService_ListOwn_ForcesUserFilter(t *testing.T) {
	ownerID := uuid.New()
	foreignID := uuid.New()

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(filter repository.CreditLedgerFilter) bool {
		return filter.UserID != nil && *filter.UserID == ownerID
	})).Return([]*entity.CreditTransaction{ledgerRow(ownerID, false)}, nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	rows, err := svc.ListOwn(context.Background(), ownerID, &usecase.ListLedgerInput{UserID: &foreignID})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	repo.AssertExpectations(t)
}

func TestLedgerService_GetOwn_ForeignRowBehavesAbsent(t *testing.T) {
	ownerID := uuid.New()
	row := ledgerRow(uuid.New(), false)

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	_, err := svc.GetOwn(context.Background(), ownerID, row.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreditTransactionNotFound)
}

func TestLedgerService_SoftDeleteOwn_ReleasesOwnCredit(t *testing.T) {
	row := ledgerRow(uuid.New(), false)
	deletedRow := ledgerRow(row.UserID, true)
	deletedRow.ID = row.ID

	repo := new(mockRepo.MockCreditLedgerRepository)
	publisher := new(mockSvc.MockEventPublisher)
	repo.On("FindByID", mock.Anything, row.ID).Return(row, nil)
	repo.On("SoftDelete", mock.Anything, row.ID).Return(deletedRow, nil)
	publisher.On("PublishLedgerEvent", mock.Anything, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Publisher: publisher, Logger: testLogger()})

	got, err := svc.SoftDeleteOwn(context.Background(), row.UserID, row.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	repo.AssertExpectations(t)
}

func TestLedgerService_SoftDeleteOwn_ForeignRowBehavesAbsent(t *testing.T) {
	ownerID := uuid.New()
	row := ledgerRow(uuid.New(), false)

	repo := new(mockRepo.MockCreditLedgerRepository)
	repo.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	svc := NewLedgerService(LedgerServiceParams{LedgerRepo: repo, Logger: testLogger()})

	_, err := svc.SoftDeleteOwn(context.Background(), ownerID, row.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCreditTransactionNotFound)
	repo.AssertNotCalled(t, "SoftDelete")
}
