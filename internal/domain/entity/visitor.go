package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender of a visitor as recorded from their identity document.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Visitor is a person entity independent of any single visit, identified by
// a unique document number.
type Visitor struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullname"`
	IDNumber   string    `json:"id_number"`
	Birthday   time.Time `json:"birthday"`
	Gender     Gender    `json:"gender"`
	Region     string    `json:"region"`
	ExpireDate time.Time `json:"expire_date"`
	Phone      string    `json:"phone"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
