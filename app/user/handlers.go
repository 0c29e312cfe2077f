package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/internal/validator"
	"github.com/propleague/ante/models"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service Service
}

// NewHandler creates a new user handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterUserRequest  true  "User registration details"
// @Success      201      {object}  api.Response{data=Response}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to register user")
		return
	}

	api.CreatedResponse(c, "User registered successfully", user)
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticate a user and return an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Login credentials"
// @Success      200      {object}  api.Response{data=LoginResponse}
// @Failure      401      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.UnauthorizedResponse(c)
			return
		}
		api.InternalErrorResponse(c, "Failed to log in")
		return
	}

	api.SuccessResponse(c, 200, "Login successful", resp)
}

// GetProfile godoc
// @Summary      Get the caller's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=Response}
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "User")
			return
		}
		api.InternalErrorResponse(c, "Failed to load profile")
		return
	}

	api.SuccessResponse(c, 200, "Profile retrieved", profile)
}
