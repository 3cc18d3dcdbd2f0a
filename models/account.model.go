package models

import (
	"gorm.io/gorm"
)

// Account holds one user's balance. The ledger service is the only writer of
// Balance; it never lets a withdrawal or outgoing transfer take it below zero.
type Account struct {
	gorm.Model
	UserID        uint    `gorm:"not null;index" json:"userId"`
	AccountNumber string  `gorm:"unique;not null" json:"accountNumber"` // 12 digits
	Balance       float64 `gorm:"not null;default:0" json:"balance"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
