package controller

import (
	"strconv"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// GetActivity godoc
// @Summary Recent activity for the caller
// @Description Most recent first, bounded by the platform-wide feed cap
// @Tags activity
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "max entries" default(20)
// @Success 200 {object} util.Response{data=[]model.ActivityEntry}
// @Router /api/activity [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	var entries []model.ActivityEntry
	var err error
	if claims.Role == model.Admin && ctx.Query("all") == "true" {
		entries, err = c.ActivityService.QueryAll(ctx.Request.Context(), limit)
	} else {
		entries, err = c.ActivityService.QueryByUser(ctx.Request.Context(), claims.Email, limit)
	}
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"activity": entries})
}

// GetAllActivity godoc
// @Summary Platform-wide activity feed
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   limit query int false "max entries" default(50)
// @Success 200 {object} util.Response{data=[]model.ActivityEntry}
// @Router /api/admin/activity [get]
func (c *ActivityController) GetAllActivity(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	entries, err := c.ActivityService.QueryAll(ctx.Request.Context(), limit)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"activity": entries})
}
