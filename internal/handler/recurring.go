package handler

import (
	"net/http"
	"time"

	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/recurring"
	"github.com/001AnonymousMarco/Aurum-Finance-Web/internal/util"

	"github.com/gin-gonic/gin"
)

// ProcessRecurring 触发一次全量周期模板扫描（供外部 cron 调用，无需鉴权）
func ProcessRecurring(p *recurring.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		created, err := p.ProcessAll(time.Now())
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to process recurring transactions")
			return
		}

		util.Success(c, util.Response{
			"message":              "Recurring transactions processed",
			"transactions_created": created,
		})
	}
}
