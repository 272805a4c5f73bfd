package impl

import (
	"context"
	"testing"

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

func planServiceForTest(planRepo *mockRepo.MockPlanRepository) usecase.PlanUsecase {
	return NewPlanService(PlanServiceParams{
		TxManager: &mockRepo.MockTransactionManager{Factory: &mockRepo.MockRepositoryFactory{PlanRepo: planRepo}},
		PlanRepo:  planRepo,
		Logger:    testLogger(),
	})
}

func TestPlanService_ListActivePlans_FiltersInactive(t *testing.T) {
	planRepo := new(mockRepo.MockPlanRepository)
	active := entity.StatusActive
	planRepo.On("List", mock.Anything, &active).Return([]*entity.Plan{
		{ID: uuid.New(), Name: "starter", Status: entity.StatusActive},
	}, nil)

	svc := planServiceForTest(planRepo)

	plans, err := svc.ListActivePlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "starter", plans[0].Name)
}

func TestPlanService_CreatePlan(t *testing.T) {
	planRepo := new(mockRepo.MockPlanRepository)
	planRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Plan")).Return(nil)

	svc := planServiceForTest(planRepo)

	plan, err := svc.CreatePlan(context.Background(), &usecase.PlanInput{
		Name:           "pro",
		BuildingCredit: 10,
		UserCredit:     25,
		MonthlyVisits:  500,
		Price:          99.90,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, plan.Status)
	assert.Equal(t, 10, plan.BuildingCredit)
	assert.Equal(t, 25, plan.UserCredit)
}

func TestPlanService_UpdatePlan_NotFound(t *testing.T) {
	id := uuid.New()

	planRepo := new(mockRepo.MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrPlanNotFound)

	svc := planServiceForTest(planRepo)

	_, err := svc.UpdatePlan(context.Background(), id, &usecase.PlanInput{Name: "pro"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestPlanService_SetPlanStatus_NoOpGuard(t *testing.T) {
	plan := &entity.Plan{ID: uuid.New(), Status: entity.StatusInactive}

	planRepo := new(mockRepo.MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)

	svc := planServiceForTest(planRepo)

	_, err := svc.SetPlanStatus(context.Background(), plan.ID, entity.StatusInactive)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInactive)
	planRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPlanService_DeletePlan_NotFound(t *testing.T) {
	id := uuid.New()

	planRepo := new(mockRepo.MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrPlanNotFound)

	svc := planServiceForTest(planRepo)

	err := svc.DeletePlan(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
	planRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
