package model

import (
	"time"

	"github.com/google/uuid"
)

// CreditTransactionModel mirrors the 'credit_transactions' table, the
// append-only credit ledger. The deleted flag is the only mutable column;
// counting queries filter on (user_id, type, action, deleted).
type CreditTransactionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_credit_tx_user_type"`
	BuildingID *uuid.UUID `gorm:"type:uuid;index"`
	Purpose    string     `gorm:"type:varchar(255);not null"`
	Type       string     `gorm:"type:varchar(20);not null;index:idx_credit_tx_user_type"`
	Action     string     `gorm:"type:varchar(20);not null"`
	OccurredAt time.Time  `gorm:"not null;index"`
	Deleted    bool       `gorm:"not null;default:false"`
	DeletedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreditTransactionModel) TableName() string {
	return "credit_transactions"
}
