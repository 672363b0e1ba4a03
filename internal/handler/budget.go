package handler

import (
	"net/http"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler 负责预算相关接口
type BudgetHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewBudgetHandler(db *gorm.DB, pageSize int) *BudgetHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &BudgetHandler{DB: db, PageSize: pageSize}
}

type budgetReq struct {
	Month        int     `json:"month" binding:"required"`
	Year         int     `json:"year" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	BudgetAmount float64 `json:"budget_amount"`
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := util.ValidateMonth(req.Month); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid month")
		return
	}
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Unknown category")
		return
	}
	if err := util.ValidateAmount(req.BudgetAmount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	budget := models.Budget{
		UserID:       user.ID,
		Month:        req.Month,
		Year:         req.Year,
		Category:     req.Category,
		BudgetAmount: req.BudgetAmount,
	}
	if err := h.DB.Create(&budget).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save budget")
		return
	}

	util.Success(c, util.Response{"budget": budget})
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ?", user.ID).Limit(h.PageSize).Find(&budgets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query budgets")
		return
	}

	util.Success(c, util.Response{"budgets": budgets})
}
