package calendar

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupCalendarRoutes(router *gin.RouterGroup, controller Controller) {
	// The month view exposes guest names, so it stays behind staff auth.
	admin := router.Group("/admin/properties/:propertyId/calendar")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.GET("", controller.GetMonth)
	}
}
