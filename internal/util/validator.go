package util

import (
	"fmt"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"
)

// ValidateAmount 验证金额（非负且不超过上限）
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %f", amount)
	}
	if amount >= 10000000 { // 限制最大金额为1千万
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}

// ValidateCategory 验证分类必须属于固定枚举集合
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if !models.IsValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// ValidateRate 验证利率（APR 百分比，0-100）
func ValidateRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return fmt.Errorf("rate must be 0-100, got %f", rate)
	}
	return nil
}

// ValidateMonth 验证预算月份取值
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}
	return nil
}

// ParseDate 解析日期，兼容 RFC3339 / 带秒 / 仅日期三种格式
func ParseDate(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00+08:00
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		// 无时区信息的格式按本地时区解析
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", s)
}
