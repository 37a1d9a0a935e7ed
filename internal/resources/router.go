package resources

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupResourceRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - booking front ends read the catalog
	public := router.Group("/resources")
	{
		public.GET("", controller.ListResources)
		public.GET("/:resourceId", controller.GetResource)
	}

	router.GET("/sections", controller.ListSections)
	router.GET("/properties/:propertyId", controller.GetProperty)

	// Admin routes - catalog management is staff-only
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		admin.POST("/properties", controller.CreateProperty)
		admin.PUT("/properties/:propertyId", controller.UpdateProperty)
		admin.POST("/resources", controller.CreateResource)
		admin.PUT("/resources/:resourceId", controller.UpdateResource)
		admin.DELETE("/resources/:resourceId", controller.DeleteResource)
		admin.POST("/sections", controller.CreateSection)
	}
}
