package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"staybook/internal/shared/utils/response"
	"staybook/pkg/timeutil"
)

type Controller interface {
	CreateReservation(c *gin.Context)
	GetReservation(c *gin.Context)
	GetReservationByCode(c *gin.Context)
	ListReservations(c *gin.Context)
	ApplyAction(c *gin.Context)
	GetReservationHistory(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: validator.New(),
	}
}

func (ctrl *controller) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

func (ctrl *controller) GetReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid reservation ID", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

func (ctrl *controller) GetReservationByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Missing reservation code", nil, nil)
		return
	}

	reservation, err := ctrl.service.GetReservationByCode(c.Request.Context(), code)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

func (ctrl *controller) ListReservations(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Query("propertyId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid or missing propertyId", nil, err.Error())
		return
	}

	filter := ListFilter{
		PropertyID: propertyID,
		Status:     c.Query("status"),
		GuestEmail: c.Query("guestEmail"),
	}
	if raw := c.Query("resourceId"); raw != "" {
		resourceID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid resourceId", nil, err.Error())
			return
		}
		filter.ResourceID = &resourceID
	}
	if raw := c.Query("dateFrom"); raw != "" {
		dateFrom, err := timeutil.ParseDate(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid dateFrom", nil, err.Error())
			return
		}
		filter.DateFrom = &dateFrom
	}
	if raw := c.Query("dateTo"); raw != "" {
		dateTo, err := timeutil.ParseDate(raw)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid dateTo", nil, err.Error())
			return
		}
		filter.DateTo = &dateTo
	}

	list, err := ctrl.service.ListReservations(c.Request.Context(), filter)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservations retrieved successfully", list, nil)
}

func (ctrl *controller) ApplyAction(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid reservation ID", nil, err.Error())
		return
	}

	var req ApplyActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	reservation, err := ctrl.service.ApplyAction(c.Request.Context(), reservationID, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation updated successfully", reservation, nil)
}

func (ctrl *controller) GetReservationHistory(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("reservationId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid reservation ID", nil, err.Error())
		return
	}

	entries, err := ctrl.service.GetReservationHistory(c.Request.Context(), reservationID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Reservation history retrieved successfully", entries, nil)
}
