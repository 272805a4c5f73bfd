package repository

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBuildingRepository is a testify mock for repository.BuildingRepository.
type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Building), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBuildingRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Building, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Building), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBuildingRepository) List(ctx context.Context) ([]*entity.Building, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Building), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBuildingRepository) Create(ctx context.Context, building *entity.Building) error {
	return m.Called(ctx, building).Error(0)
}

func (m *MockBuildingRepository) Update(ctx context.Context, building *entity.Building) error {
	return m.Called(ctx, building).Error(0)
}

func (m *MockBuildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockAssignmentRepository is a testify mock for repository.AssignmentRepository.
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Find(ctx context.Context, buildingID, userID uuid.UUID) (*entity.DoormanAssignment, error) {
	args := m.Called(ctx, buildingID, userID)
	if v := args.Get(0); v != nil {
		return v.(*entity.DoormanAssignment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAssignmentRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.DoormanAssignment, error) {
	args := m.Called(ctx, buildingID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.DoormanAssignment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAssignmentRepository) ListByDoorman(ctx context.Context, userID uuid.UUID) ([]*entity.DoormanAssignment, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.DoormanAssignment), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *entity.DoormanAssignment) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *MockAssignmentRepository) UpdateStatus(ctx context.Context, buildingID, userID uuid.UUID, status entity.Status) error {
	return m.Called(ctx, buildingID, userID, status).Error(0)
}
