package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

// Controller defines the analytics controller interface
type Controller interface {
	GetPropertyStats(c *gin.Context)
}

// controller implements the Controller interface
type controller struct {
	service Service
}

// NewController creates a new analytics controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetPropertyStats(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid property ID", nil, err.Error())
		return
	}

	dateFrom := c.Query("dateFrom")
	dateTo := c.Query("dateTo")
	if dateFrom == "" || dateTo == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Missing dateFrom or dateTo", nil, nil)
		return
	}

	stats, err := ctrl.service.GetPropertyStats(c.Request.Context(), propertyID, dateFrom, dateTo)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Property stats retrieved successfully", stats, nil)
}
