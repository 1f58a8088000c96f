package handlers

import (
	"net/http"

	"localpro/models"
	"localpro/services/booking"
	"localpro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type createBookingBody struct {
	ServiceID   string `json:"serviceId"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
}

type statusBody struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, logger, bindError(err))
		return
	}

	caller := identity(c)
	created, err := h.Service.Create(c.Request.Context(), models.BookingRequest{
		SeekerID:    caller.UserID,
		ServiceID:   body.ServiceID,
		BookingDate: body.BookingDate,
		BookingTime: body.BookingTime,
		Duration:    body.Duration,
		Notes:       body.Notes,
	})
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("serviceId", body.ServiceID)), err)
		return
	}
	logger.Info("Booking created", zap.String("bookingId", created.ID), zap.String("providerId", created.ProviderID))
	c.JSON(http.StatusCreated, created)
}

// UpdateStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, logger, bindError(err))
		return
	}

	updated, err := h.Service.Transition(c.Request.Context(), models.TransitionRequest{
		BookingID: id,
		ActorID:   identity(c).UserID,
		Status:    models.BookingStatus(body.Status),
		Reason:    body.Reason,
	})
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("bookingId", id)), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	found, err := h.Service.Get(c.Request.Context(), id, identity(c))
	if err != nil {
		utils.RespondError(c, logger.With(zap.String("bookingId", id)), err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListMyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	page, limit, err := pageParams(c)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	result, err := h.Service.ListForSeeker(c.Request.Context(), identity(c).UserID, page, limit)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListProviderBookingsHandler handles GET /api/bookings/provider.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	page, limit, err := pageParams(c)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	status := models.BookingStatus(c.Query("status"))
	result, err := h.Service.ListForProvider(c.Request.Context(), identity(c).UserID, status, page, limit)
	if err != nil {
		utils.RespondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
