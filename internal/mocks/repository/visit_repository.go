package repository

import (
	"context"

	"gatedesk/internal/domain/entity"
	"gatedesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVisitorRepository is a testify mock for repository.VisitorRepository.
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Visitor), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitorRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.Visitor, error) {
	args := m.Called(ctx, idNumber)
	if v := args.Get(0); v != nil {
		return v.(*entity.Visitor), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitorRepository) List(ctx context.Context) ([]*entity.Visitor, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Visitor), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitorRepository) Create(ctx context.Context, visitor *entity.Visitor) error {
	return m.Called(ctx, visitor).Error(0)
}

func (m *MockVisitorRepository) Update(ctx context.Context, visitor *entity.Visitor) error {
	return m.Called(ctx, visitor).Error(0)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockVisitRepository is a testify mock for repository.VisitRepository.
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Visit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) List(ctx context.Context, filter repository.VisitFilter) ([]*entity.Visit, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Visit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockVisitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return m.Called(ctx, visit).Error(0)
}

func (m *MockVisitRepository) Update(ctx context.Context, visit *entity.Visit) error {
	return m.Called(ctx, visit).Error(0)
}

func (m *MockVisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
