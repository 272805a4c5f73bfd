package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditType identifies which quota a ledger entry draws from.
type CreditType string

const (
	// CreditTypeBuilding draws from the plan's building quota.
	CreditTypeBuilding CreditType = "building"
	// CreditTypeUser draws from the plan's user (doorman) quota.
	CreditTypeUser CreditType = "user"
)

// String returns the string representation of the credit type.
func (t CreditType) String() string {
	return string(t)
}

// IsValid checks if the CreditType is a valid value.
func (t CreditType) IsValid() bool {
	return t == CreditTypeBuilding || t == CreditTypeUser
}

// CreditAction distinguishes consumption from release entries.
type CreditAction string

const (
	// CreditActionAdd records a credit consumption.
	CreditActionAdd CreditAction = "add"
	// CreditActionDelete records a credit release.
	CreditActionDelete CreditAction = "delete"
)

// String returns the string representation of the credit action.
func (a CreditAction) String() string {
	return string(a)
}

// IsValid checks if the CreditAction is a valid value.
func (a CreditAction) IsValid() bool {
	return a == CreditActionAdd || a == CreditActionDelete
}

// CreditTransaction is one row of the append-only credit ledger. Rows are
// never mutated except for the soft-delete flag; consumed counts are always
// recomputed by aggregating non-deleted add entries, never cached.
type CreditTransaction struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user_id"`
	BuildingID *uuid.UUID   `json:"building_id,omitempty"`
	Purpose    string       `json:"purpose"`
	Type       CreditType   `json:"type"`
	Action     CreditAction `json:"action"`
	OccurredAt time.Time    `json:"occurred_at"`
	Deleted    bool         `json:"deleted"`
	DeletedAt  *time.Time   `json:"deleted_at,omitempty"`
}
