package handler

import (
	"net/http"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler 负责仪表盘汇总接口
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// GetSummary 返回本自然月收支、资产负债合计、净资产与分类支出
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	// 本月所有收支
	var transactions []models.Transaction
	if err := h.DB.Where("user_id = ? AND date >= ? AND date < ?",
		user.ID, startOfMonth, endOfMonth).
		Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query transactions")
		return
	}

	var monthlyIncome, monthlyExpenses float64
	expenseBreakdown := make(map[string]float64)
	for i := range transactions {
		t := &transactions[i]
		if t.Type == models.TypeIncome {
			monthlyIncome += t.Amount
		} else {
			monthlyExpenses += t.Amount
			expenseBreakdown[t.Category] += t.Amount
		}
	}

	var assets []models.Asset
	if err := h.DB.Where("user_id = ?", user.ID).Find(&assets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query assets")
		return
	}
	var liabilities []models.Liability
	if err := h.DB.Where("user_id = ?", user.ID).Find(&liabilities).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query liabilities")
		return
	}

	var totalAssets, totalLiabilities float64
	for i := range assets {
		totalAssets += assets[i].CurrentValue
	}
	for i := range liabilities {
		totalLiabilities += liabilities[i].AmountOwed
	}

	util.Success(c, util.Response{
		"net_worth":         totalAssets - totalLiabilities,
		"monthly_income":    monthlyIncome,
		"monthly_expenses":  monthlyExpenses,
		"cash_flow":         monthlyIncome - monthlyExpenses,
		"total_assets":      totalAssets,
		"total_liabilities": totalLiabilities,
		"expense_breakdown": expenseBreakdown,
	})
}
