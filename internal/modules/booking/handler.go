package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Fenrir-OwO/hmsproject/internal/domain"
	"github.com/Fenrir-OwO/hmsproject/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	bookingGroup := protected.Group("/bookings")
	{
		bookingGroup.POST("", h.Create)
		bookingGroup.GET("", h.ListMine)
		bookingGroup.DELETE("/:id", h.Cancel)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	personID := c.GetInt64("person_id")

	b, err := h.service.Create(c.Request.Context(), personID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is already booked")
		case errors.Is(err, ErrBadBookingDate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking date must be YYYY-MM-DD")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMine(c *gin.Context) {
	personID := c.GetInt64("person_id")

	bookings, err := h.service.ListMine(c.Request.Context(), personID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	personID := c.GetInt64("person_id")
	role := domain.PersonRole(c.GetString("role"))

	if err := h.service.Cancel(c.Request.Context(), personID, role, bookingID); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot cancel this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "CANCEL_FAILED", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}
