package entity

import (
	"time"

	"github.com/google/uuid"
)

// BuildingType classifies the registered property.
type BuildingType string

const (
	// BuildingTypeBuilding is a single residential or office building.
	BuildingTypeBuilding BuildingType = "building"
	// BuildingTypeComplex is a multi-building compound.
	BuildingTypeComplex BuildingType = "complex"
	// BuildingTypeTower is a high-rise.
	BuildingTypeTower BuildingType = "tower"
)

// String returns the string representation of the building type.
func (t BuildingType) String() string {
	return string(t)
}

// IsValid checks if the BuildingType is a valid value.
func (t BuildingType) IsValid() bool {
	switch t {
	case BuildingTypeBuilding, BuildingTypeComplex, BuildingTypeTower:
		return true
	default:
		return false
	}
}

// BuildingQR is the opaque access credential generated exactly once when a
// building is created. The identifier is globally unique; the image URL
// points at the rendered PNG in blob storage.
type BuildingQR struct {
	UniqueIdentifier string `json:"unique_identifier"`
	ImageURL         string `json:"image_url"`
}

// Building is owned by exactly one user. Creation is gated by the
// entitlement engine and consumes one building credit.
type Building struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Type      BuildingType `json:"type"`
	Status    Status       `json:"status"`
	QR        BuildingQR   `json:"qr_code"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// OwnedBy reports whether the given user owns this building.
func (b *Building) OwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}
