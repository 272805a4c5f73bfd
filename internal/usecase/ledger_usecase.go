package usecase

import (
	"context"

	"gatedesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ListLedgerInput narrows credit ledger listings.
type ListLedgerInput struct {
	UserID         *uuid.UUID
	Type           *entity.CreditType
	IncludeDeleted bool
}

// LedgerUsecase defines operations over the credit ledger. Rows are
// appended by the entitlement-gated creations; this surface only reads and
// toggles the soft-delete flag.
type LedgerUsecase interface {
	// List returns ledger rows newest first, excluding deleted rows unless
	// asked for them.
	List(ctx context.Context, input *ListLedgerInput) ([]*entity.CreditTransaction, error)

	// Get returns a single live row. Deleted rows behave as absent.
	Get(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// SoftDelete marks a row deleted, releasing the credit it consumed.
	// Fails with NotFound when the row is missing or already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// Restore clears the deleted flag, re-consuming the credit. Fails with
	// NotFound when the row is missing or not currently deleted.
	Restore(ctx context.Context, id uuid.UUID) (*entity.CreditTransaction, error)

	// ListOwn returns the requester's own ledger rows; the user filter is
	// forced to the requester regardless of input.
	ListOwn(ctx context.Context, userID uuid.UUID, input *ListLedgerInput) ([]*entity.CreditTransaction, error)

	// GetOwn returns one of the requester's live rows. Rows owned by other
	// users behave as absent.
	GetOwn(ctx context.Context, userID, id uuid.UUID) (*entity.CreditTransaction, error)

	// SoftDeleteOwn releases a credit the requester consumed. Rows owned by
	// other users behave as absent.
	SoftDeleteOwn(ctx context.Context, userID, id uuid.UUID) (*entity.CreditTransaction, error)
}
