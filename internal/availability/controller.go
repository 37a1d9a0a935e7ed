package availability

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

type Controller interface {
	GetDayAvailability(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetDayAvailability(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resource ID", nil, err.Error())
		return
	}

	date := c.Query("date")
	if date == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Missing date", nil, nil)
		return
	}

	granularity := 0
	if raw := c.Query("granularity"); raw != "" {
		granularity, err = strconv.Atoi(raw)
		if err != nil || granularity <= 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid granularity", nil, nil)
			return
		}
	}

	availability, err := ctrl.service.GetDayAvailability(c.Request.Context(), resourceID, date, granularity)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability retrieved successfully", availability, nil)
}
