package dashboard

import (
	"net/http"

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
	protected.GET("/dashboard", h.Show)
}

func (h *Handler) Show(c *gin.Context) {
	personID := c.GetInt64("person_id")
	role := domain.PersonRole(c.GetString("role"))

	view, err := h.service.Build(c.Request.Context(), personID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}

	response.Success(c, http.StatusOK, view)
}
