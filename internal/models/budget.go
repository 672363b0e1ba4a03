package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is a monthly spending target for one category.
type Budget struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"index;size:36;not null" json:"user_id"`
	Month        int       `gorm:"not null" json:"month"` // 1-12
	Year         int       `gorm:"not null" json:"year"`
	Category     string    `gorm:"size:32;not null" json:"category"`
	BudgetAmount float64   `gorm:"not null" json:"budget_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
