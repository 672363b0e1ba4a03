package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Liability represents money the user owes.
type Liability struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	AmountOwed  float64   `gorm:"not null" json:"amount_owed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *Liability) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
