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

// AssetHandler 负责资产相关接口
type AssetHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewAssetHandler(db *gorm.DB, pageSize int) *AssetHandler {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &AssetHandler{DB: db, PageSize: pageSize}
}

type assetReq struct {
	Description  string  `json:"description" binding:"required,max=255"`
	CurrentValue float64 `json:"current_value"`
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.CurrentValue); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	asset := models.Asset{
		UserID:       user.ID,
		Description:  strings.TrimSpace(req.Description),
		CurrentValue: req.CurrentValue,
	}
	if err := h.DB.Create(&asset).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save asset")
		return
	}

	util.Success(c, util.Response{"asset": asset})
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var assets []models.Asset
	if err := h.DB.Where("user_id = ?", user.ID).Limit(h.PageSize).Find(&assets).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query assets")
		return
	}

	util.Success(c, util.Response{"assets": assets})
}

// UpdateAsset 全量替换式更新（只能改自己的），刷新 updated_at
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req assetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid request body")
		return
	}
	if err := util.ValidateAmount(req.CurrentValue); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Invalid amount")
		return
	}

	var asset models.Asset
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&asset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "Asset not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to query asset")
		}
		return
	}

	asset.Description = strings.TrimSpace(req.Description)
	asset.CurrentValue = req.CurrentValue
	asset.UpdatedAt = time.Now()

	if err := h.DB.Save(&asset).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to save asset")
		return
	}

	util.Success(c, util.Response{"asset": asset})
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.Asset{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to delete asset")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Asset not found")
		return
	}

	util.Success(c, util.Response{"message": "Asset deleted successfully"})
}
