package reservations

import (
	"github.com/gin-gonic/gin"

	"staybook/internal/shared/middleware"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	// Guests create and look up their own reservation by code.
	public := router.Group("/reservations")
	{
		public.POST("", controller.CreateReservation)
		public.GET("/code/:code", controller.GetReservationByCode)
	}

	// Listing, lifecycle actions and audit history are staff operations.
	staff := router.Group("/admin/reservations")
	staff.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		staff.GET("", controller.ListReservations)
		staff.GET("/:reservationId", controller.GetReservation)
		staff.POST("/:reservationId/actions", controller.ApplyAction)
		staff.GET("/:reservationId/history", controller.GetReservationHistory)
	}
}
