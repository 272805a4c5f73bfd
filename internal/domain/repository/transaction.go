package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewEmailTokenRepository returns an EmailTokenRepository instance bound to the current transaction.
	NewEmailTokenRepository() EmailTokenRepository

	// NewPlanRepository returns a PlanRepository instance bound to the current transaction.
	NewPlanRepository() PlanRepository

	// NewActivePlanRepository returns an ActivePlanRepository instance bound to the current transaction.
	NewActivePlanRepository() ActivePlanRepository

	// NewCreditLedgerRepository returns a CreditLedgerRepository instance bound to the current transaction.
	NewCreditLedgerRepository() CreditLedgerRepository

	// NewBuildingRepository returns a BuildingRepository instance bound to the current transaction.
	NewBuildingRepository() BuildingRepository

	// NewAssignmentRepository returns an AssignmentRepository instance bound to the current transaction.
	NewAssignmentRepository() AssignmentRepository

	// NewVisitorRepository returns a VisitorRepository instance bound to the current transaction.
	NewVisitorRepository() VisitorRepository

	// NewVisitRepository returns a VisitRepository instance bound to the current transaction.
	NewVisitRepository() VisitRepository
}
