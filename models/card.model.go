package models

import (
	"gorm.io/gorm"
)

// CardType defines the kind of card issued against an account
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// Per-account issue caps
const (
	MaxDebitCards  = 2
	MaxCreditCards = 1
)

type Card struct {
	gorm.Model
	AccountID   uint     `gorm:"not null;index" json:"accountId"`
	CardNumber  string   `gorm:"unique;not null" json:"cardNumber"` // 16 digits
	CardType    CardType `gorm:"type:varchar(10);not null" json:"cardType"`
	Expiry      string   `gorm:"default:''" json:"expiry"`
	CVV         string   `gorm:"default:''" json:"-"`
	PinHash     string   `gorm:"not null" json:"-"`
	Blocked     bool     `gorm:"default:false" json:"blocked"`
	CreditLimit float64  `gorm:"default:5000" json:"creditLimit"`
}
