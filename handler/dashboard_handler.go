package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func DashboardHandler(c *gin.Context, dashboardService *usecase.DashboardService) {
	userID := c.GetString("user_id")

	stats, err := dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, stats)
}
