package blocks

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupBlockRoutes(router *gin.RouterGroup, controller Controller) {
	// Blocked ranges are staff-managed; reads stay behind auth too because
	// they expose private-event and maintenance details.
	admin := router.Group("/admin/blocks")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.GET("", controller.ListBlocks)
		admin.POST("", controller.CreateBlock)
		admin.DELETE("/:blockId", controller.DeleteBlock)
	}
}
