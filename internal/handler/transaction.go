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

// TransactionHandler 负责收支记录相关接口
type TransactionHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewTransactionHandler(db *gorm.DB, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &TransactionHandler{
		DB:       db,
		PageSize: pageSize,
	}
}

// ---------- 请求结构 ----------

type createTransactionReq struct {
	Type               string  `json:"type" binding:"required,oneof=income expense"`
	Amount             float64 `json:"amount"`
	Description        string  `json:"description" binding:"max=255"`
	Category           string  `json:"category" binding:"required"`
	Date               string  `json:"date" binding:"required"`
	IsRecurring        bool    `json:"is_recurring"`
	Frequency          string  `json:"frequency"`
	RecurringStartDate string  `json:"recurring_start_date"`
}

// ---------- 记一笔 ----------

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Unknown category")
		return
	}

	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid date")
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Date:        date,
		IsRecurring: req.IsRecurring,
	}

	// 周期模板字段
	if req.IsRecurring {
		if !models.IsValidFrequency(req.Frequency) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid frequency")
			return
		}
		tx.Frequency = req.Frequency
		if req.RecurringStartDate != "" {
			start, err := util.ParseDate(req.RecurringStartDate)
			if err != nil {
				util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid recurring start date")
				return
			}
			tx.RecurringStartDate = &start
		}
	}

	if err := h.DB.Create(&tx).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save transaction")
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}

// ListTransactions 查询收支记录，支持时间范围、类别和描述模糊搜索
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	category := c.Query("category")
	search := strings.TrimSpace(c.Query("search_query"))

	filtered := false
	query := h.DB.Where("user_id = ?", user.ID)

	if startStr != "" {
		start, err := util.ParseDate(startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date >= ?", start)
		filtered = true
	}
	if endStr != "" {
		end, err := util.ParseDate(endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		// 结束日期按“当天结束”处理：< end+1 天
		query = query.Where("date < ?", end.Add(24*time.Hour))
		filtered = true
	}
	if category != "" {
		if !models.IsValidCategory(category) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Unknown category")
			return
		}
		query = query.Where("category = ?", category)
		filtered = true
	}
	if search != "" {
		// 描述不区分大小写模糊匹配
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
		filtered = true
	}

	if filtered {
		query = query.Order("date DESC")
	}

	var transactions []models.Transaction
	if err := query.Limit(h.PageSize).Find(&transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query transactions")
		return
	}

	util.Success(c, util.Response{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

// GetTransaction 查询单条记录（只能查自己的）
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var tx models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Transaction not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query transaction")
		}
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}

// DeleteTransaction 删除一条记录（只能删自己的）
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Transaction{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete transaction")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Transaction not found")
		return
	}

	util.Success(c, util.Response{
		"message": "Transaction deleted successfully",
	})
}
