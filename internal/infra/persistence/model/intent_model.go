package model

import "time"

// GatewayIntentModel is the GORM-specific struct for the 'gateway_intents' table.
type GatewayIntentModel struct {
	GatewayOrderID   string `gorm:"type:varchar(64);primaryKey"`
	AmountMinorUnits int64  `gorm:"not null"`
	Currency         string `gorm:"type:varchar(3);not null"`
	ReceiptID        string `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (GatewayIntentModel) TableName() string {
	return "gateway_intents"
}
