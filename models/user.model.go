package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"unique;not null" json:"email"`
	Username string `gorm:"unique;not null" json:"username"`
	Phone    string `gorm:"default:''" json:"phone"`
	Address  string `gorm:"default:''" json:"address"`
	DOB      string `gorm:"default:''" json:"dob"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"isAdmin"`
}
