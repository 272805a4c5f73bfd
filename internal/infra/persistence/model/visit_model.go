package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitorModel mirrors the 'visitors' table. Visitors exist independently of
// any one visit and are keyed by their document number.
type VisitorModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName   string    `gorm:"type:varchar(100);not null"`
	IDNumber   string    `gorm:"type:varchar(50);unique;not null"`
	Birthday   time.Time
	Gender     string `gorm:"type:varchar(10)"`
	Region     string `gorm:"type:varchar(100)"`
	ExpireDate time.Time
	Phone      string `gorm:"type:varchar(30)"`
	Status     string `gorm:"type:varchar(20);not null;default:active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitorModel) TableName() string {
	return "visitors"
}

// VisitModel mirrors the 'visits' table. The composite unique index rejects
// a second check-in of the same visitor at the same building on the same
// timestamp, backing the duplicate-visit guard.
type VisitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuildingID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_visits_tuple;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_visits_tuple;index"`
	Purpose      string    `gorm:"type:varchar(255)"`
	Unit         string    `gorm:"type:varchar(50)"`
	CheckInDate  time.Time `gorm:"not null;uniqueIndex:idx_visits_tuple;index"`
	CheckOutDate *time.Time
	Status       string `gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
