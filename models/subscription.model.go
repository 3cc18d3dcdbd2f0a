package models

import (
	"time"

	"gorm.io/gorm"
)

// BillingFrequency defines how often a subscription bills
type BillingFrequency string

const (
	FrequencyWeekly  BillingFrequency = "Weekly"
	FrequencyMonthly BillingFrequency = "Monthly"
	FrequencyYearly  BillingFrequency = "Yearly"
)

// Subscription tracks a recurring payment. Billing dates are recorded but
// never advanced by any background job; there is no automated billing.
type Subscription struct {
	gorm.Model
	UserID        uint             `gorm:"not null;index" json:"userId"`
	Name          string           `gorm:"not null" json:"name"`
	Amount        float64          `gorm:"not null" json:"amount"`
	Frequency     BillingFrequency `gorm:"type:varchar(10);not null" json:"frequency"`
	Active        bool             `gorm:"default:true" json:"active"`
	LastBilledAt  *time.Time       `json:"lastBilledAt"`
	NextBillingAt *time.Time       `json:"nextBillingAt"`
}
