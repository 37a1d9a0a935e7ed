package calendar

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

type Controller interface {
	GetMonth(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetMonth(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid property ID", nil, err.Error())
		return
	}

	month := c.Query("month")
	if month == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Missing month", nil, nil)
		return
	}

	var resourceID *uuid.UUID
	if raw := c.Query("resourceId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resourceId", nil, err.Error())
			return
		}
		resourceID = &parsed
	}

	calendar, err := ctrl.service.GetMonth(c.Request.Context(), propertyID, month, resourceID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Calendar retrieved successfully", calendar, nil)
}
