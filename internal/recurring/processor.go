package recurring

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"

	"gorm.io/gorm"
)

// RecurringSuffix 标记由模板生成的实例
const RecurringSuffix = " (Recurring)"

// Processor 扫描所有用户的周期模板，为到期模板生成当期实例。
// 由外部定时触发（cron 等），自身不做调度；并发触发不加协调。
type Processor struct {
	DB *gorm.DB

	// WeeklyDuplicateGuard 为 weekly 模板启用与 monthly/yearly 相同的查重。
	// 关闭时保留上游实现的行为：同一天重复触发会重复生成实例。
	WeeklyDuplicateGuard bool
}

// NewProcessor 构造函数
func NewProcessor(db *gorm.DB, weeklyGuard bool) *Processor {
	return &Processor{
		DB:                   db,
		WeeklyDuplicateGuard: weeklyGuard,
	}
}

// ProcessAll 处理全部到期模板，返回生成的实例数。
// 单个模板失败不会中断其余模板的处理。
func (p *Processor) ProcessAll(now time.Time) (int, error) {
	var templates []models.Transaction
	if err := p.DB.Where("is_recurring = ?", true).Find(&templates).Error; err != nil {
		return 0, fmt.Errorf("load recurring templates: %w", err)
	}

	today := dateOnly(now)
	created := 0

	for i := range templates {
		tpl := &templates[i]

		// 缺失起始日期或频率非法的模板静默跳过
		if tpl.RecurringStartDate == nil || !models.IsValidFrequency(tpl.Frequency) {
			continue
		}

		due, err := p.isDue(tpl, today)
		if err != nil {
			log.Printf("recurring: check template %s: %v", tpl.ID, err)
			continue
		}
		if !due {
			continue
		}

		instance := models.Transaction{
			UserID:      tpl.UserID,
			Type:        tpl.Type,
			Amount:      tpl.Amount,
			Description: tpl.Description + RecurringSuffix,
			Category:    tpl.Category,
			Date:        today,
			IsRecurring: false,
		}
		if err := p.DB.Create(&instance).Error; err != nil {
			log.Printf("recurring: create instance for template %s: %v", tpl.ID, err)
			continue
		}
		created++
	}

	return created, nil
}

// isDue 判断模板在 today 是否到期（含查重）
func (p *Processor) isDue(tpl *models.Transaction, today time.Time) (bool, error) {
	start := dateOnly(tpl.RecurringStartDate.In(today.Location()))

	switch tpl.Frequency {
	case models.FrequencyWeekly:
		days := daysBetween(start, today)
		if days < 0 || days%7 != 0 {
			return false, nil
		}
		if !p.WeeklyDuplicateGuard {
			return true, nil
		}
		// 与 monthly/yearly 相同的查重，窗口为最近 7 天
		return p.noExistingInstance(tpl, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))

	case models.FrequencyMonthly:
		if today.Day() != start.Day() || !today.After(start) {
			return false, nil
		}
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return p.noExistingInstance(tpl, firstOfMonth, today.AddDate(0, 0, 1))

	case models.FrequencyYearly:
		if today.Month() != start.Month() || today.Day() != start.Day() || today.Year() <= start.Year() {
			return false, nil
		}
		firstOfYear := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return p.noExistingInstance(tpl, firstOfYear, firstOfYear.AddDate(1, 0, 0))

	default:
		return false, fmt.Errorf("unknown frequency %q", tpl.Frequency)
	}
}

// noExistingInstance 检查 [from, to) 内是否已有同描述同金额的非模板实例
func (p *Processor) noExistingInstance(tpl *models.Transaction, from, to time.Time) (bool, error) {
	var count int64
	err := p.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND is_recurring = ? AND description = ? AND amount = ? AND date >= ? AND date < ?",
			tpl.UserID, false, tpl.Description+RecurringSuffix, tpl.Amount, from, to).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check existing instance: %w", err)
	}
	return count == 0, nil
}

// dateOnly 取日期零点
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween 计算两个零点日期之间的整天数，四舍五入以消化夏令时偏差
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
