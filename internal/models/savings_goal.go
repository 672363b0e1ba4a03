package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavingsGoal tracks progress towards a saving target.
type SavingsGoal struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"index;size:36;not null" json:"user_id"`
	GoalName      string    `gorm:"size:128;not null" json:"goal_name"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"not null" json:"current_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (g *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
