package order

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	orderGroup := protected.Group("/orders")
	{
		orderGroup.POST("/food", h.CreateFoodOrder)
		orderGroup.POST("/service", h.CreateServiceOrder)
		orderGroup.GET("", h.ListMine)
	}
}

func (h *Handler) CreateFoodOrder(c *gin.Context) {
	var req CreateFoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	personID := c.GetInt64("person_id")

	o, err := h.service.CreateFoodOrder(c.Request.Context(), personID, req)
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Food item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "ORDER_FAILED", "Failed to create food order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) CreateServiceOrder(c *gin.Context) {
	var req CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	personID := c.GetInt64("person_id")

	o, err := h.service.CreateServiceOrder(c.Request.Context(), personID, req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "ORDER_FAILED", "Failed to create service order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) ListMine(c *gin.Context) {
	personID := c.GetInt64("person_id")

	orders, err := h.service.ListMine(c.Request.Context(), personID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}

	response.Success(c, http.StatusOK, orders)
}
