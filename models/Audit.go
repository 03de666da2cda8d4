package models

import (
	"time"
)

// AuditLog records every admin mutation on a registration
type AuditLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AdminID    uint      `json:"adminID" gorm:"index;not null"`
	Action     string    `json:"action" gorm:"size:64;index"` // e.g. registration.status, registration.delete
	ResourceID uint      `json:"resourceID" gorm:"index"`
	BeforeJSON string    `json:"beforeJSON" gorm:"type:text"`
	AfterJSON  string    `json:"afterJSON" gorm:"type:text"`
	IPAddress  string    `json:"ipAddress" gorm:"size:64"`
	CreatedAt  time.Time `json:"createdAt"`
}
