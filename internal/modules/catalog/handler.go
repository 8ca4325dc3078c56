package catalog

import (
	"errors"
	"net/http"

	"github.com/Fenrir-OwO/hmsproject/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms", h.ListRooms)
	v1.GET("/foods", h.ListFoods)
	v1.GET("/services", h.ListServices)
}

func (h *Handler) ListRooms(c *gin.Context) {
	q := RoomQuery{
		AvailableOnly: c.Query("available") == "true",
		RoomType:      c.Query("room_type"),
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrUnknownRoomType) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown room type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) ListFoods(c *gin.Context) {
	foods, err := h.service.ListFoods(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list foods")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"foods": foods})
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}
