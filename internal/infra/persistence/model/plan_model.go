package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel mirrors the 'plans' table. Credit columns are quotas; consumption
// lives in the credit_transactions ledger.
type PlanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	BuildingCredit int       `gorm:"not null;default:0"`
	UserCredit     int       `gorm:"not null;default:0"`
	MonthlyVisits  int       `gorm:"not null;default:0"`
	Price          float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Status         string    `gorm:"type:varchar(20);not null;default:active;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}

// ActivePlanModel mirrors the 'active_plans' table. A user accumulates rows
// over time; entitlement lookups pick the most recently issued active one.
type ActivePlanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_active_plans_user_status"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:pending;index:idx_active_plans_user_status"`
	IssuedAt  time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Plan *PlanModel `gorm:"foreignKey:PlanID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivePlanModel) TableName() string {
	return "active_plans"
}
