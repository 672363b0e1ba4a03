package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Debt is an interest-bearing balance with a minimum payment.
type Debt struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"index;size:36;not null" json:"user_id"`
	Name           string    `gorm:"size:128;not null" json:"name"`
	TotalBalance   float64   `gorm:"not null" json:"total_balance"`
	InterestRate   float64   `gorm:"not null" json:"interest_rate"` // APR percent
	MinimumPayment float64   `gorm:"not null" json:"minimum_payment"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
