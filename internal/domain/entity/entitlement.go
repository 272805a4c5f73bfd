package entity

// Entitlement is the point-in-time view of a user's remaining credits,
// derived by aggregating the ledger against the active plan's quotas.
type Entitlement struct {
	ActivePlan       *ActivePlan `json:"active_plan"`
	Plan             *Plan       `json:"plan"`
	ConsumedBuilding int         `json:"consumed_building"`
	ConsumedUser     int         `json:"consumed_user"`
}

// Remaining returns the remaining quota for the given credit kind. It can be
// negative if an admin shrank a plan after grants were issued.
func (e *Entitlement) Remaining(kind CreditType) int {
	if kind == CreditTypeBuilding {
		return e.Plan.BuildingCredit - e.ConsumedBuilding
	}

	return e.Plan.UserCredit - e.ConsumedUser
}

// Consumed returns the consumed count for the given credit kind.
func (e *Entitlement) Consumed(kind CreditType) int {
	if kind == CreditTypeBuilding {
		return e.ConsumedBuilding
	}

	return e.ConsumedUser
}
