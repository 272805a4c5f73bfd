package impl

import (
	"context"
	"testing"

	"gatedesk/internal/domain/entity"
	domainerrors "gatedesk/internal/domain/errors"
	"gatedesk/internal/domain/repository"
	mockRepo "gatedesk/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEntitlementService_Resolve(t *testing.T) {
	userID := uuid.New()
	grant := activeGrant(userID, 5, 3)

	grantRepo := new(mockRepo.MockActivePlanRepository)
	ledgerRepo := new(mockRepo.MockCreditLedgerRepository)

	grantRepo.On("FindCurrentActive", mock.Anything, userID).Return(grant, nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeBuilding).Return(int64(2), nil)
	ledgerRepo.On("CountConsumed", mock.Anything, userID, entity.CreditTypeUser).Return(int64(3), nil)

	svc := NewEntitlementService(EntitlementServiceParams{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     ledgerRepo,
		Logger:         testLogger(),
	})

	ent, err := svc.Resolve(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, ent.ConsumedBuilding)
	assert.Equal(t, 3, ent.ConsumedUser)
	assert.Equal(t, grant.Plan, ent.Plan)
	// Read path must not take the row lock.
	grantRepo.AssertNotCalled(t, "FindCurrentActiveForUpdate", mock.Anything, mock.Anything)
}

func TestEntitlementService_Resolve_NoActivePlan(t *testing.T) {
	userID := uuid.New()

	grantRepo := new(mockRepo.MockActivePlanRepository)
	grantRepo.On("FindCurrentActive", mock.Anything, userID).Return(nil, repository.ErrActivePlanNotFound)

	svc := NewEntitlementService(EntitlementServiceParams{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     new(mockRepo.MockCreditLedgerRepository),
		Logger:         testLogger(),
	})

	_, err := svc.Resolve(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoActivePlan)
}

func TestEntitlementService_Resolve_GrantWithoutPlan(t *testing.T) {
	userID := uuid.New()
	grant := activeGrant(userID, 5, 3)
	grant.Plan = nil

	grantRepo := new(mockRepo.MockActivePlanRepository)
	grantRepo.On("FindCurrentActive", mock.Anything, userID).Return(grant, nil)

	svc := NewEntitlementService(EntitlementServiceParams{
		ActivePlanRepo: grantRepo,
		LedgerRepo:     new(mockRepo.MockCreditLedgerRepository),
		Logger:         testLogger(),
	})

	_, err := svc.Resolve(context.Background(), userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestGateCredit(t *testing.T) {
	ent := &entity.Entitlement{
		Plan:             &entity.Plan{BuildingCredit: 2, UserCredit: 1},
		ConsumedBuilding: 1,
		ConsumedUser:     1,
	}

	assert.NoError(t, gateCredit(ent, entity.CreditTypeBuilding))
	assert.ErrorIs(t, gateCredit(ent, entity.CreditTypeUser), domainerrors.ErrUserCreditExceeded)

	ent.ConsumedBuilding = 2
	assert.ErrorIs(t, gateCredit(ent, entity.CreditTypeBuilding), domainerrors.ErrBuildingCreditExceeded)
}
