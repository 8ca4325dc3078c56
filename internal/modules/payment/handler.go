package payment

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
	paymentGroup := protected.Group("/payments")
	{
		paymentGroup.GET("/due", h.Due)
		paymentGroup.POST("/settle", h.Settle)
		paymentGroup.GET("", h.History)
	}
}

func (h *Handler) Due(c *gin.Context) {
	personID := c.GetInt64("person_id")

	due, err := h.service.Due(c.Request.Context(), personID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dues")
		return
	}

	response.Success(c, http.StatusOK, due)
}

func (h *Handler) Settle(c *gin.Context) {
	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Method must be cash or card")
		return
	}

	personID := c.GetInt64("person_id")

	result, err := h.service.Settle(c.Request.Context(), personID, req)
	if err != nil {
		if errors.Is(err, ErrNothingDue) {
			response.Error(c, http.StatusConflict, "NOTHING_DUE", "No unpaid orders to settle")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SETTLEMENT_FAILED", "Failed to settle orders")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) History(c *gin.Context) {
	personID := c.GetInt64("person_id")

	payments, err := h.service.History(c.Request.Context(), personID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}
