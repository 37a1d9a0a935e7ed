package pricing

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupPricingRoutes(router *gin.RouterGroup, controller Controller) {
	admin := router.Group("/admin/prices")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.GET("", controller.ListPrices)
		admin.POST("", controller.CreatePrice)
		admin.DELETE("/:priceId", controller.DeletePrice)
	}
}
