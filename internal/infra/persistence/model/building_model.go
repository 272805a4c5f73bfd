package model

import (
	"time"

	"github.com/google/uuid"
)

// BuildingModel mirrors the 'buildings' table. The QR identifier is minted
// once at creation and never regenerated.
type BuildingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(100);not null"`
	Address            string    `gorm:"type:varchar(255)"`
	City               string    `gorm:"type:varchar(100)"`
	Latitude           float64   `gorm:"type:decimal(10,7)"`
	Longitude          float64   `gorm:"type:decimal(10,7)"`
	Type               string    `gorm:"type:varchar(20);not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:active"`
	QRUniqueIdentifier string    `gorm:"type:varchar(64);unique;not null"`
	QRImageURL         string    `gorm:"type:varchar(500)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}

// DoormanBuildingModel mirrors the 'doorman_buildings' table. The unique pair
// index makes reassignment a status toggle instead of a second row.
type DoormanBuildingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doorman_buildings_pair"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doorman_buildings_pair"`
	Status     string    `gorm:"type:varchar(20);not null;default:active"`
	AssignedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoormanBuildingModel) TableName() string {
	return "doorman_buildings"
}
