package router

import (
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/config"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/handler"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/middleware"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/recurring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// ====== API ======
	api := r.Group("/api")

	pageSize := cfg.App.PageSize

	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireMinutes, cfg.Security.BcryptCost)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// 周期模板扫描：由外部 cron 触发，无需鉴权
	processor := recurring.NewProcessor(db, cfg.Recurring.WeeklyDuplicateGuard)
	api.POST("/transactions/process-recurring", handler.ProcessRecurring(processor))

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", authHandler.GetMe)
	protected.PUT("/me", handler.UpdateProfile(db))
	protected.POST("/me/password", handler.ChangePassword(db, cfg.Security.BcryptCost))

	txHandler := handler.NewTransactionHandler(db, pageSize)
	protected.POST("/transactions", txHandler.CreateTransaction)
	protected.GET("/transactions", txHandler.ListTransactions)
	protected.GET("/transactions/:id", txHandler.GetTransaction)
	protected.DELETE("/transactions/:id", txHandler.DeleteTransaction)

	assetHandler := handler.NewAssetHandler(db, pageSize)
	protected.POST("/assets", assetHandler.CreateAsset)
	protected.GET("/assets", assetHandler.ListAssets)
	protected.PUT("/assets/:id", assetHandler.UpdateAsset)
	protected.DELETE("/assets/:id", assetHandler.DeleteAsset)

	liabilityHandler := handler.NewLiabilityHandler(db, pageSize)
	protected.POST("/liabilities", liabilityHandler.CreateLiability)
	protected.GET("/liabilities", liabilityHandler.ListLiabilities)
	protected.PUT("/liabilities/:id", liabilityHandler.UpdateLiability)
	protected.DELETE("/liabilities/:id", liabilityHandler.DeleteLiability)

	budgetHandler := handler.NewBudgetHandler(db, pageSize)
	protected.POST("/budgets", budgetHandler.CreateBudget)
	protected.GET("/budgets", budgetHandler.ListBudgets)

	goalHandler := handler.NewSavingsGoalHandler(db, pageSize)
	protected.POST("/savings-goals", goalHandler.CreateSavingsGoal)
	protected.GET("/savings-goals", goalHandler.ListSavingsGoals)
	protected.PUT("/savings-goals/:id", goalHandler.UpdateSavingsGoal)

	debtHandler := handler.NewDebtHandler(db, pageSize)
	protected.POST("/debts", debtHandler.CreateDebt)
	protected.GET("/debts", debtHandler.ListDebts)
	protected.PUT("/debts/:id", debtHandler.UpdateDebt)
	protected.DELETE("/debts/:id", debtHandler.DeleteDebt)

	dashboardHandler := handler.NewDashboardHandler(db)
	protected.GET("/dashboard/summary", dashboardHandler.GetSummary)

	reportHandler := handler.NewReportHandler(db)
	protected.GET("/reports/cashflow", reportHandler.GetCashFlow)
	protected.GET("/reports/spending", reportHandler.GetSpending)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	auditHandler := handler.NewAuditHandler(db)
	protected.GET("/logs", auditHandler.ListLogs)

	return r
}
