// Package repository provides hand-written test doubles for the persistence
// interfaces.
package repository

import (
	"context"

	"gatedesk/internal/domain/repository"
)

// MockTransactionManager runs the unit of work against a fixed factory
// without a real database transaction.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

// Execute invokes fn with the configured factory, or returns Err.
func (m *MockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out the repositories it was built with.
type MockRepositoryFactory struct {
	UserRepo       repository.UserRepository
	TokenRepo      repository.EmailTokenRepository
	PlanRepo       repository.PlanRepository
	ActivePlanRepo repository.ActivePlanRepository
	LedgerRepo     repository.CreditLedgerRepository
	BuildingRepo   repository.BuildingRepository
	AssignmentRepo repository.AssignmentRepository
	VisitorRepo    repository.VisitorRepository
	VisitRepo      repository.VisitRepository
}

func (f *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *MockRepositoryFactory) NewEmailTokenRepository() repository.EmailTokenRepository {
	return f.TokenRepo
}

func (f *MockRepositoryFactory) NewPlanRepository() repository.PlanRepository {
	return f.PlanRepo
}

func (f *MockRepositoryFactory) NewActivePlanRepository() repository.ActivePlanRepository {
	return f.ActivePlanRepo
}

func (f *MockRepositoryFactory) NewCreditLedgerRepository() repository.CreditLedgerRepository {
	return f.LedgerRepo
}

func (f *MockRepositoryFactory) NewBuildingRepository() repository.BuildingRepository {
	return f.BuildingRepo
}

func (f *MockRepositoryFactory) NewAssignmentRepository() repository.AssignmentRepository {
	return f.AssignmentRepo
}

func (f *MockRepositoryFactory) NewVisitorRepository() repository.VisitorRepository {
	return f.VisitorRepo
}

func (f *MockRepositoryFactory) NewVisitRepository() repository.VisitRepository {
	return f.VisitRepo
}
