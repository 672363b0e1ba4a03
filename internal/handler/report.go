package handler

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler 负责现金流与支出报表接口
type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

type cashFlowEntry struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// GetCashFlow 返回过去 12 期的现金流序列，最旧的在前。
// 每期按“今天”往回退 30 天的倍数取落点日期，再归并到落点所在自然月；
// 固定 30 天步进会在年尾产生月份漂移，这是有意保留的上游行为。
func (h *ReportHandler) GetCashFlow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()

	// 最新的在前，最后整体反转
	entries := make([]cashFlowEntry, 0, 12)
	for i := 0; i < 12; i++ {
		anchor := now.AddDate(0, 0, -30*i)
		startOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		var transactions []models.Transaction
		if err := h.DB.Where("user_id = ? AND date >= ? AND date < ?",
			user.ID, startOfMonth, endOfMonth).
			Find(&transactions).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query transactions")
			return
		}

		var income, expenses float64
		for j := range transactions {
			if transactions[j].Type == models.TypeIncome {
				income += transactions[j].Amount
			} else {
				expenses += transactions[j].Amount
			}
		}

		entries = append(entries, cashFlowEntry{
			Month:    fmt.Sprintf("%s %d", anchor.Month().String(), anchor.Year()),
			Income:   income,
			Expenses: expenses,
			Net:      income - expenses,
		})
	}

	// 反转为最旧在前
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	util.Success(c, util.Response{
		"cash_flow": entries,
	})
}

type spendingCategory struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// GetSpending 返回时间范围内按类别汇总的支出，金额降序。
// 范围缺省为本月 1 日至今。
func (h *ReportHandler) GetSpending(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now

	if s := c.Query("start_date"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		start = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		end = t
	}

	var transactions []models.Transaction
	if err := h.DB.Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
		user.ID, models.TypeExpense, start, end).
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query transactions")
		return
	}

	byCategory := make(map[string]float64)
	var totalSpent float64
	for i := range transactions {
		byCategory[transactions[i].Category] += transactions[i].Amount
		totalSpent += transactions[i].Amount
	}

	categories := make([]spendingCategory, 0, len(byCategory))
	for name, amount := range byCategory {
		pct := 0.0
		if totalSpent > 0 {
			pct = amount / totalSpent * 100
		}
		categories = append(categories, spendingCategory{
			Category:   name,
			Amount:     amount,
			Percentage: pct,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Amount > categories[j].Amount
	})

	util.Success(c, util.Response{
		"categories":  categories,
		"total_spent": totalSpent,
		"start_date":  start,
		"end_date":    end,
	})
}
