package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is an admin-managed catalog entry. Its credit fields are quotas, not
// balances: consumption is tracked separately in the credit ledger.
type Plan struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BuildingCredit int       `json:"building_credit"`
	UserCredit     int       `json:"user_credit"`
	MonthlyVisits  int       `json:"monthly_visits"`
	Price          float64   `json:"price"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// QuotaFor returns the credit quota this plan grants for the given kind.
func (p *Plan) QuotaFor(kind CreditType) int {
	if kind == CreditTypeBuilding {
		return p.BuildingCredit
	}

	return p.UserCredit
}
