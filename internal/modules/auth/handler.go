package auth

import (
	"errors"
	"net/http"

	"github.com/Fenrir-OwO/hmsproject/internal/pkg/response"
	"github.com/Fenrir-OwO/hmsproject/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if violations := validator.Validate(req); violations != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup data", violations)
		return
	}

	result, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Passwords do not match")
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "This username is already taken")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create account")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  toPersonPublic(result),
		"token": result.Token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toPersonPublic(result),
		"token": result.Token,
	})
}

// Logout is stateless: the token simply expires client-side. Kept as an
// endpoint so clients have a uniform logout call.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	personID := c.GetInt64("person_id")

	person, err := h.service.GetCurrentPerson(c.Request.Context(), personID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":            person.ID,
			"username":      person.Username,
			"email":         person.Email,
			"first_name":    person.FirstName,
			"last_name":     person.LastName,
			"role":          person.Role,
			"date_joined":   person.DateJoined,
			"phone_numbers": person.PhoneNumbers,
		},
	})
}

func toPersonPublic(r *LoginResult) PersonPublic {
	return PersonPublic{
		ID:        r.Person.ID,
		Username:  r.Person.Username,
		Email:     r.Person.Email,
		FirstName: r.Person.FirstName,
		LastName:  r.Person.LastName,
		Role:      string(r.Person.Role),
	}
}
