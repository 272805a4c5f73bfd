package repository

import (
	"context"

	"gatedesk/internal/domain/entity"
	"gatedesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCreditLedgerRepository is a testify mock for repository.CreditLedgerRepository.
type MockCreditLedgerRepository struct {
	mock.Mock
}

func (m *MockCreditLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.CreditTransaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCreditLedgerRepository) List(ctx context.Context, filter repository.CreditLedgerFilter) ([]*entity.CreditTransaction, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*entity.CreditTransaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCreditLedgerRepository) Append(ctx context.Context, tx *entity.CreditTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCreditLedgerRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.CreditTransaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCreditLedgerRepository) Restore(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.CreditTransaction), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCreditLedgerRepository) CountConsumed(ctx context.Context, userID uuid.UUID, creditType entity.CreditType) (int64, error) {
	args := m.Called(ctx, userID, creditType)

	return args.Get(0).(int64), args.Error(1)
}
