package prop

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/internal/validator"
	"github.com/propleague/ante/models"
)

// Handler handles HTTP requests for prop operations
type Handler struct {
	service Service
}

// NewHandler creates a new prop handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create a prop
// @Description  Open a new proposition in a league the caller belongs to
// @Tags         props
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreatePropRequest  true  "Prop details"
// @Success      201      {object}  api.Response{data=PropResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      403      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreatePropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v, time.Now().UTC()) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.CreatedResponse(c, "Prop created", resp)
}

// Get godoc
// @Summary      Get a prop
// @Description  A prop with its wager pool summary
// @Tags         props
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Prop ID"
// @Success      200  {object}  api.Response{data=PropResponse}
// @Failure      404  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	propID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid prop ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), userID, propID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Prop retrieved", resp)
}

// ListByLeague godoc
// @Summary      List a league's props
// @Tags         props
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response{data=[]PropResponse}
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id}/props [get]
func (h *Handler) ListByLeague(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid league ID")
		return
	}

	resp, err := h.service.ListByLeague(c.Request.Context(), userID, leagueID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.ListResponse(c, "Props retrieved", resp, len(resp))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Prop")
	case errors.Is(err, models.ErrNotLeagueMember):
		api.ForbiddenResponse(c, "You are not a member of this league")
	case errors.Is(err, models.ErrInvalidMemberID):
		api.BadRequestResponse(c, "Target member does not belong to this league")
	case errors.Is(err, models.ErrInvalidDeadline),
		errors.Is(err, models.ErrInvalidQuestion),
		errors.Is(err, models.ErrInvalidPropKind),
		errors.Is(err, models.ErrInvalidWagerAmount),
		errors.Is(err, models.ErrInvalidOddsValue):
		api.BadRequestResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, "Failed to process prop")
	}
}
