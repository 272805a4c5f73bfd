package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoormanAssignment links a doorman-role user to a building. The pair
// (BuildingID, UserID) is unique: an assignment is toggled between active and
// inactive rather than duplicated or deleted-and-recreated.
type DoormanAssignment struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	UserID     uuid.UUID `json:"user_id"`
	Status     Status    `json:"status"`
	AssignedAt time.Time `json:"assigned_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
