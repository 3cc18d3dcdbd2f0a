package models

import (
	"gorm.io/gorm"
)

// Upi is the one-to-one payment alias of an account, e.g. "alice@bank".
type Upi struct {
	gorm.Model
	AccountID uint   `gorm:"unique;not null" json:"accountId"`
	UpiID     string `gorm:"unique;not null" json:"upiId"`
	Verified  bool   `gorm:"default:false" json:"verified"`
}
