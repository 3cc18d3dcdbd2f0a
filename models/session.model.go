package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a server-side login session. The token is also a signed JWT; a
// request passes the gate only when the token verifies and this row still
// exists and has not expired, so logout revokes immediately.
type Session struct {
	gorm.Model
	Token     string    `gorm:"unique;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	IsAdmin   bool      `gorm:"default:false" json:"isAdmin"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
