package blocks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

type Controller interface {
	CreateBlock(c *gin.Context)
	DeleteBlock(c *gin.Context)
	ListBlocks(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	block, err := ctrl.service.CreateBlock(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Block created successfully", block, nil)
}

func (ctrl *controller) DeleteBlock(c *gin.Context) {
	blockID, err := uuid.Parse(c.Param("blockId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid block ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteBlock(c.Request.Context(), blockID); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Block deleted successfully", nil, nil)
}

func (ctrl *controller) ListBlocks(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid or missing propertyId", nil, err.Error())
		return
	}

	query := ListBlocksQuery{
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

	list, err := ctrl.service.ListBlocks(c.Request.Context(), query)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Blocks retrieved successfully", list, nil)
}
