package controller

import (
	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	AuthService        *service.AuthService
}

func NewAchievementController(achievementService *service.AchievementService, authService *service.AuthService) *AchievementController {
	return &AchievementController{
		AchievementService: achievementService,
		AuthService:        authService,
	}
}

// GetAchievements godoc
// @Summary Badge catalog with the caller's earned state
// @Description Earned state is derived from aggregate stats on every read
// @Tags achievements
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserAchievements}
// @Failure 401 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.AchievementService.GetUserAchievements(user)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
