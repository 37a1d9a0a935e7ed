package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

type Controller interface {
	CreatePrice(c *gin.Context)
	DeletePrice(c *gin.Context)
	ListPrices(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePrice(c *gin.Context) {
	var req CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	price, err := ctrl.service.CreatePrice(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Seasonal price created successfully", price, nil)
}

func (ctrl *controller) DeletePrice(c *gin.Context) {
	priceID, err := uuid.Parse(c.Param("priceId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid price ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeletePrice(c.Request.Context(), priceID); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seasonal price deleted successfully", nil, nil)
}

func (ctrl *controller) ListPrices(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid or missing propertyId", nil, err.Error())
		return
	}

	query := ListPricesQuery{
		PropertyID: propertyID,
		DateFrom:   c.Query("dateFrom"),
		DateTo:     c.Query("dateTo"),
	}
	if raw := c.Query("resourceId"); raw != "" {
		resourceID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resourceId", nil, err.Error())
			return
		}
		query.ResourceID = &resourceID
	}

	list, err := ctrl.service.ListPrices(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seasonal prices retrieved successfully", list, nil)
}
