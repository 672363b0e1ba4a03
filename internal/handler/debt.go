package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/models"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DebtHandler 负责债务相关接口
type DebtHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewDebtHandler(db *gorm.DB, pageSize int) *DebtHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &DebtHandler{DB: db, PageSize: pageSize}
}

type debtReq struct {
	Name           string  `json:"name" binding:"required,max=128"`
	TotalBalance   float64 `json:"total_balance"`
	InterestRate   float64 `json:"interest_rate"` // APR 百分比
	MinimumPayment float64 `json:"minimum_payment"`
}

func (r *debtReq) validate() error {
	if err := util.ValidateAmount(r.TotalBalance); err != nil {
		return err
	}
	if err := util.ValidateAmount(r.MinimumPayment); err != nil {
		return err
	}
	return util.ValidateRate(r.InterestRate)
}

func (h *DebtHandler) CreateDebt(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req debtReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	debt := models.Debt{
		UserID:         user.ID,
		Name:           strings.TrimSpace(req.Name),
		TotalBalance:   req.TotalBalance,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
	}
	if err := h.DB.Create(&debt).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save debt")
		return
	}

	util.Success(c, util.Response{"debt": debt})
}

func (h *DebtHandler) ListDebts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var debts []models.Debt
	if err := h.DB.Where("user_id = ?", user.ID).Limit(h.PageSize).Find(&debts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query debts")
		return
	}

	util.Success(c, util.Response{"debts": debts})
}

func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req debtReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	var debt models.Debt
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&debt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Debt not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query debt")
		}
		return
	}

	debt.Name = strings.TrimSpace(req.Name)
	debt.TotalBalance = req.TotalBalance
	debt.InterestRate = req.InterestRate
	debt.MinimumPayment = req.MinimumPayment
	debt.UpdatedAt = time.Now()

	if err := h.DB.Save(&debt).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save debt")
		return
	}

	util.Success(c, util.Response{"debt": debt})
}

func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Debt{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete debt")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Debt not found")
		return
	}

	util.Success(c, util.Response{"message": "Debt deleted successfully"})
}
