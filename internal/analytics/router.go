package analytics

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup, controller Controller) {
	admin := rg.Group("/admin/properties/:propertyId/stats")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.GET("", controller.GetPropertyStats)
	}
}
