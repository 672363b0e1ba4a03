package models

import "time"

// AuditLog records authenticated operations for the /logs endpoint.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"index;size:36"`
	Method    string    `gorm:"size:16"`
	Path      string    `gorm:"size:255"`
	IP        string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:255"`
	CreatedAt time.Time
}
