package models

import (
	"gorm.io/gorm"
)

// TxnType defines the type of a ledger entry
type TxnType string

const (
	TxnTypeDeposit          TxnType = "deposit"
	TxnTypeWithdrawal       TxnType = "withdrawal"
	TxnTypeTransferSent     TxnType = "transfer_sent"
	TxnTypeTransferReceived TxnType = "transfer_received"
)

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted after creation; they outlive the account they reference as an
// audit trail.
type Transaction struct {
	gorm.Model
	TxnID        string  `gorm:"unique;not null" json:"txnId"`
	UserID       uint    `gorm:"not null;index" json:"userId"`
	AccountID    uint    `gorm:"not null;index" json:"accountId"`
	TxnType      TxnType `gorm:"type:varchar(20);not null" json:"txnType"`
	Amount       float64 `gorm:"not null" json:"amount"`
	Counterparty string  `gorm:"default:''" json:"counterparty"` // account number or UPI id
	Remarks      string  `gorm:"default:''" json:"remarks"`
}
