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

// LiabilityHandler 负责负债相关接口
type LiabilityHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewLiabilityHandler(db *gorm.DB, pageSize int) *LiabilityHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &LiabilityHandler{DB: db, PageSize: pageSize}
}

type liabilityReq struct {
	Description string  `json:"description" binding:"required,max=255"`
	AmountOwed  float64 `json:"amount_owed"`
}

func (h *LiabilityHandler) CreateLiability(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req liabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.AmountOwed); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	liability := models.Liability{
		UserID:      user.ID,
		Description: strings.TrimSpace(req.Description),
		AmountOwed:  req.AmountOwed,
	}
	if err := h.DB.Create(&liability).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save liability")
		return
	}

	util.Success(c, util.Response{"liability": liability})
}

func (h *LiabilityHandler) ListLiabilities(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var liabilities []models.Liability
	if err := h.DB.Where("user_id = ?", user.ID).Limit(h.PageSize).Find(&liabilities).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query liabilities")
		return
	}

	util.Success(c, util.Response{"liabilities": liabilities})
}

func (h *LiabilityHandler) UpdateLiability(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req liabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.AmountOwed); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	var liability models.Liability
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&liability).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Liability not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query liability")
		}
		return
	}

	liability.Description = strings.TrimSpace(req.Description)
	liability.AmountOwed = req.AmountOwed
	liability.UpdatedAt = time.Now()

	if err := h.DB.Save(&liability).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save liability")
		return
	}

	util.Success(c, util.Response{"liability": liability})
}

func (h *LiabilityHandler) DeleteLiability(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Liability{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete liability")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Liability not found")
		return
	}

	util.Success(c, util.Response{"message": "Liability deleted successfully"})
}
