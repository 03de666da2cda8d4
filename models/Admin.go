package models

import "gorm.io/gorm"

// Admin is a staff account for the review dashboard
type Admin struct {
	gorm.Model
	Email    string `json:"email" gorm:"size:200;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:200;not null"` // bcrypt hash
	Role     string `json:"role" gorm:"type:varchar(20);default:admin;index"`
}
