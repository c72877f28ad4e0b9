package model

import "time"

// AddressBookModel is the per-user version row of the 'address_books' table.
// Every address write bumps Version under a row lock.
type AddressBookModel struct {
	UserID    string `gorm:"type:varchar(128);primaryKey"`
	Version   int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressBookModel) TableName() string {
	return "address_books"
}

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The partial unique index allows at most one default address per user.
type AddressModel struct {
	UserID       string    `gorm:"type:varchar(128);primaryKey;index:idx_addresses_one_default,unique,where:is_default"`
	AddressID    string    `gorm:"type:varchar(64);primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	PostalCode   string    `gorm:"type:varchar(20);not null"`
	AddressType  string    `gorm:"type:varchar(16);not null;default:home"`
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
