package repository

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPlanRepository is a testify mock for repository.PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Plan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context, status *entity.Status) ([]*entity.Plan, error) {
	args := m.Called(ctx, status)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Plan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockPlanRepository) Update(ctx context.Context, plan *entity.Plan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockActivePlanRepository is a testify mock for repository.ActivePlanRepository.
type MockActivePlanRepository struct {
	mock.Mock
}

func (m *MockActivePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivePlan, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.ActivePlan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivePlanRepository) FindCurrentActive(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*entity.ActivePlan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivePlanRepository) FindCurrentActiveForUpdate(ctx context.Context, userID uuid.UUID) (*entity.ActivePlan, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*entity.ActivePlan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivePlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ActivePlan, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.ActivePlan), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockActivePlanRepository) Create(ctx context.Context, grant *entity.ActivePlan) error {
	return m.Called(ctx, grant).Error(0)
}

func (m *MockActivePlanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ActivePlanStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
