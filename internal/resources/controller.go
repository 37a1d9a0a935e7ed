package resources

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
)

type Controller interface {
	CreateProperty(c *gin.Context)
	GetProperty(c *gin.Context)
	UpdateProperty(c *gin.Context)
	CreateResource(c *gin.Context)
	GetResource(c *gin.Context)
	ListResources(c *gin.Context)
	UpdateResource(c *gin.Context)
	DeleteResource(c *gin.Context)
	CreateSection(c *gin.Context)
	ListSections(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	property, err := ctrl.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Property created successfully", property, nil)
}

func (ctrl *controller) GetProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid property ID", nil, err.Error())
		return
	}

	property, err := ctrl.service.GetProperty(c.Request.Context(), propertyID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Property retrieved successfully", property, nil)
}

func (ctrl *controller) UpdateProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid property ID", nil, err.Error())
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	property, err := ctrl.service.UpdateProperty(c.Request.Context(), propertyID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Property updated successfully", property, nil)
}

func (ctrl *controller) CreateResource(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resource, err := ctrl.service.CreateResource(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Resource created successfully", resource, nil)
}

func (ctrl *controller) GetResource(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resource ID", nil, err.Error())
		return
	}

	resource, err := ctrl.service.GetResource(c.Request.Context(), resourceID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resource retrieved successfully", resource, nil)
}

func (ctrl *controller) ListResources(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid or missing propertyId", nil, err.Error())
		return
	}
	activeOnly := c.DefaultQuery("activeOnly", "true") != "false"

	list, err := ctrl.service.ListResources(c.Request.Context(), propertyID, activeOnly)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resources retrieved successfully", list, nil)
}

func (ctrl *controller) UpdateResource(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resource ID", nil, err.Error())
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resource, err := ctrl.service.UpdateResource(c.Request.Context(), resourceID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resource updated successfully", resource, nil)
}

func (ctrl *controller) DeleteResource(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resource ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteResource(c.Request.Context(), resourceID); err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Resource deleted successfully", nil, nil)
}

func (ctrl *controller) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	section, err := ctrl.service.CreateSection(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Section created successfully", section, nil)
}

func (ctrl *controller) ListSections(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid or missing propertyId", nil, err.Error())
		return
	}

	list, err := ctrl.service.ListSections(c.Request.Context(), propertyID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Sections retrieved successfully", list, nil)
}
