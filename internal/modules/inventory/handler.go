package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Fenrir-OwO/hmsproject/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	inventoryGroup := staff.Group("/inventory")
	{
		inventoryGroup.GET("", h.List)
		inventoryGroup.POST("", h.Create)
		inventoryGroup.PATCH("/:id", h.Adjust)
	}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list inventory")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.Error(c, http.StatusConflict, "NAME_EXISTS", "An item with this name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create inventory item")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

func (h *Handler) Adjust(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	var req AdjustItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.Adjust(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBadAdjustment):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Provide either quantity or delta")
		case errors.Is(err, ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to adjust inventory item")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": item})
}
