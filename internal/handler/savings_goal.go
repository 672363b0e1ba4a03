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

// SavingsGoalHandler 负责储蓄目标相关接口
type SavingsGoalHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewSavingsGoalHandler(db *gorm.DB, pageSize int) *SavingsGoalHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &SavingsGoalHandler{DB: db, PageSize: pageSize}
}

type savingsGoalReq struct {
	GoalName      string  `json:"goal_name" binding:"required,max=128"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

func (h *SavingsGoalHandler) CreateSavingsGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req savingsGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if util.ValidateAmount(req.TargetAmount) != nil || util.ValidateAmount(req.CurrentAmount) != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	goal := models.SavingsGoal{
		UserID:        user.ID,
		GoalName:      strings.TrimSpace(req.GoalName),
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save savings goal")
		return
	}

	util.Success(c, util.Response{"savings_goal": goal})
}

func (h *SavingsGoalHandler) ListSavingsGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var goals []models.SavingsGoal
	if err := h.DB.Where("user_id = ?", user.ID).Limit(h.PageSize).Find(&goals).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query savings goals")
		return
	}

	util.Success(c, util.Response{"savings_goals": goals})
}

func (h *SavingsGoalHandler) UpdateSavingsGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req savingsGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if util.ValidateAmount(req.TargetAmount) != nil || util.ValidateAmount(req.CurrentAmount) != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	var goal models.SavingsGoal
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Savings goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query savings goal")
		}
		return
	}

	goal.GoalName = strings.TrimSpace(req.GoalName)
	goal.TargetAmount = req.TargetAmount
	goal.CurrentAmount = req.CurrentAmount
	goal.UpdatedAt = time.Now()

	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save savings goal")
		return
	}

	util.Success(c, util.Response{"savings_goal": goal})
}
