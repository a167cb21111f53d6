package controller

import (
	"kidlearn_backend/internal/service"
	"kidlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	AuthService      *service.AuthService
}

func NewDashboardController(dashboardService *service.DashboardService, authService *service.AuthService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		AuthService:      authService,
	}
}

// GetDashboard godoc
// @Summary The caller's home dashboard
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserDashboard}
// @Failure 401 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), user)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// GetAdminOverview godoc
// @Summary Platform-wide counters for the admin console
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AdminOverview}
// @Router /api/admin/overview [get]
func (c *DashboardController) GetAdminOverview(ctx *gin.Context) {
	overview, err := c.DashboardService.GetAdminOverview(ctx.Request.Context())
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}
