package availability

import (
	"github.com/gin-gonic/gin"
)

func SetupAvailabilityRoutes(router *gin.RouterGroup, controller Controller) {
	// Guest-facing, no auth: this is what booking widgets poll.
	router.GET("/resources/:resourceId/availability", controller.GetDayAvailability)
}
