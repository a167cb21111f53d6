package controller

import (
	"context"
	"time"

	"kidlearn_backend/internal/store"
	"kidlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Store store.Store
}

func NewHealthController(db *gorm.DB, kv store.Store) *HealthController {
	return &HealthController{DB: db, Store: kv}
}

// Health godoc
// @Summary Liveness and dependency health
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"status":   "ok",
		"database": "ok",
		"store":    "ok",
		"time":     time.Now().Format(util.TimeFormat),
	}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.PingContext(checkCtx) != nil {
		status["database"] = "unreachable"
		healthy = false
	}

	if _, err := c.Store.Get(checkCtx, "health"); err != nil {
		status["store"] = "unreachable"
		healthy = false
	}

	if !healthy {
		status["status"] = "degraded"
		util.Error(ctx, 503, "degraded")
		return
	}

	util.Success(ctx, status)
}
