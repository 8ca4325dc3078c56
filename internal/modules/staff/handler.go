package staff

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

func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	staff.POST("/employees", h.CreateEmployee)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPersonNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Person not found")
		case errors.Is(err, ErrAlreadyEmployee):
			response.Error(c, http.StatusConflict, "ALREADY_EMPLOYEE", "Person already has an employee record")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create employee")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"employee": e})
}
