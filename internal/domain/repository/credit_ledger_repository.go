package repository

import (
	"context"
	"errors"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCreditTransactionNotFound is returned when a ledger row does not exist
// or is excluded by the default live scope.
var ErrCreditTransactionNotFound = errors.New("credit transaction not found")

// CreditLedgerFilter narrows ledger listings. Nil fields are ignored.
type CreditLedgerFilter struct {
	UserID         *uuid.UUID
	Type           *entity.CreditType
	IncludeDeleted bool
}

// CreditLedgerRepository defines operations over the append-only credit
// ledger. Rows are never updated in place except for the soft-delete flag.
type CreditLedgerRepository interface {
	// FindByID retrieves a ledger row regardless of its deleted flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// List retrieves ledger rows matching the filter, newest first. Deleted
	// rows are excluded unless the filter asks for them.
	List(ctx context.Context, filter CreditLedgerFilter) ([]*entity.CreditTransaction, error)

	// Append persists a new ledger row.
	Append(ctx context.Context, tx *entity.CreditTransaction) error

	// SoftDelete marks a live row as deleted and stamps the deletion time.
	// Returns ErrCreditTransactionNotFound when the row does not exist or is
	// already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// Restore clears the deleted flag on a soft-deleted row. Returns
	// ErrCreditTransactionNotFound when the row does not exist or is live.
	Restore(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// CountConsumed counts live add rows for the user and credit type. This
	// is the consumption figure entitlement checks compare against the plan
	// quota.
	CountConsumed(ctx context.Context, userID uuid.UUID, creditType entity.CreditType) (int64, error)
}
