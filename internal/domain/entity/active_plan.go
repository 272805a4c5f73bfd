package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivePlanStatus is the lifecycle state of a plan grant.
type ActivePlanStatus string

const (
	// ActivePlanPending is the initial state after a subscription request.
	ActivePlanPending ActivePlanStatus = "pending"
	// ActivePlanActive marks the grant entitlement computations run against.
	ActivePlanActive ActivePlanStatus = "active"
	// ActivePlanExpired is set by the external billing collaborator.
	ActivePlanExpired ActivePlanStatus = "expired"
	// ActivePlanCancelled is set by the owning user.
	ActivePlanCancelled ActivePlanStatus = "cancelled"
)

// String returns the string representation of the status.
func (s ActivePlanStatus) String() string {
	return string(s)
}

// ActivePlan is a grant of a Plan to a User. A user accumulates grants over
// time; entitlement resolution picks the most recently issued active one.
type ActivePlan struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	PlanID    uuid.UUID        `json:"plan_id"`
	Status    ActivePlanStatus `json:"status"`
	IssuedAt  time.Time        `json:"issued_at"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Plan is populated by lookups that join the catalog entry.
	Plan *Plan `json:"plan,omitempty"`
}
