package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Password         string `gorm:"not null" json:"-"`
	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	ActivityLevel    string `json:"activity_level"`
	Role             string `gorm:"default:user" json:"role"`
	Verified         bool   `json:"verified"`
	VerificationCode string `json:"-"`
}
