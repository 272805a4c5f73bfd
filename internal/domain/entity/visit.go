package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the lifecycle state of a visit record. Completed and
// cancelled are terminal.
type VisitStatus string

const (
	VisitPending   VisitStatus = "pending"
	VisitCompleted VisitStatus = "completed"
	VisitCancelled VisitStatus = "cancelled"
)

// String returns the string representation of the visit status.
func (s VisitStatus) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed.
func (s VisitStatus) Terminal() bool {
	return s == VisitCompleted || s == VisitCancelled
}

// Visit records a visitor check-in at a building. The tuple
// (BuildingID, VisitorID, CheckInDate) is unique, preventing duplicate
// simultaneous check-ins of the same visitor at the same building.
type Visit struct {
	ID           uuid.UUID   `json:"id"`
	BuildingID   uuid.UUID   `json:"building_id"`
	UserID       uuid.UUID   `json:"user_id"`
	VisitorID    uuid.UUID   `json:"visitor_id"`
	Purpose      string      `json:"purpose"`
	Unit         string      `json:"unit"`
	CheckInDate  time.Time   `json:"check_in_date"`
	CheckOutDate *time.Time  `json:"check_out_date,omitempty"`
	Status       VisitStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
