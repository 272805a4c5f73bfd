// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"gatedesk/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewEmailTokenRepository creates a new email token repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewEmailTokenRepository() repository.EmailTokenRepository {
	return NewEmailTokenRepository(f.tx)
}

// NewPlanRepository creates a new plan repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewPlanRepository() repository.PlanRepository {
	return NewPlanRepository(f.tx)
}

// NewActivePlanRepository creates a new plan grant repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewActivePlanRepository() repository.ActivePlanRepository {
	return NewActivePlanRepository(f.tx)
}

// NewCreditLedgerRepository creates a new credit ledger repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCreditLedgerRepository() repository.CreditLedgerRepository {
	return NewCreditLedgerRepository(f.tx)
}

// NewBuildingRepository creates a new building repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBuildingRepository() repository.BuildingRepository {
	return NewBuildingRepository(f.tx)
}

// NewAssignmentRepository creates a new assignment repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAssignmentRepository() repository.AssignmentRepository {
	return NewAssignmentRepository(f.tx)
}

// NewVisitorRepository creates a new visitor repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewVisitorRepository() repository.VisitorRepository {
	return NewVisitorRepository(f.tx)
}

// NewVisitRepository creates a new visit repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewVisitRepository() repository.VisitRepository {
	return NewVisitRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback
	// function, the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
