package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction 表示一笔收入或支出记录。
// is_recurring=true 的记录是周期模板，永远不会作为具体账目实例返回；
// 由模板生成的实例一律 is_recurring=false。
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	Type        string    `gorm:"size:16;index;not null" json:"type"` // income / expense
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:32;index;not null" json:"category"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`

	// 周期字段：仅模板使用
	IsRecurring        bool       `gorm:"index;default:false" json:"is_recurring"`
	Frequency          string     `gorm:"size:16" json:"frequency,omitempty"` // weekly / monthly / yearly
	RecurringStartDate *time.Time `json:"recurring_start_date,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
