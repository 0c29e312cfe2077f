package wager

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/models"
)

// Handler handles HTTP requests for wager operations
type Handler struct {
	service Service
}

// NewHandler creates a new wager handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Place godoc
// @Summary      Place a wager
// @Description  Stake credits on one side of a live prop
// @Tags         wagers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string             true  "Prop ID"
// @Param        request  body      PlaceWagerRequest  true  "Side and stake"
// @Success      201      {object}  api.Response{data=WagerResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      409      {object}  api.Response{error=api.ErrorInfo}
// @Failure      422      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props/{id}/wagers [post]
func (h *Handler) Place(c *gin.Context) {
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

	var req PlaceWagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Place(c.Request.Context(), userID, propID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.CreatedResponse(c, "Wager placed", resp)
}

// GetPool godoc
// @Summary      Get a prop's wager pool
// @Description  Wagers on the prop grouped by side with totals
// @Tags         wagers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Prop ID"
// @Success      200  {object}  api.Response{data=PoolResponse}
// @Failure      404  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props/{id}/wagers [get]
func (h *Handler) GetPool(c *gin.Context) {
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

	resp, err := h.service.GetPool(c.Request.Context(), userID, propID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Wager pool retrieved", resp)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Prop")
	case errors.Is(err, models.ErrNotLeagueMember):
		api.ForbiddenResponse(c, "You are not a member of this league")
	case errors.Is(err, models.ErrBettingClosed):
		api.ConflictResponse(c, "Betting is closed for this prop")
	case errors.Is(err, models.ErrDuplicateWager):
		api.ConflictResponse(c, "You already have a wager on this prop")
	case errors.Is(err, models.ErrInsufficientCredits):
		api.ErrorResponse(c, http.StatusUnprocessableEntity, "INSUFFICIENT_CREDITS", "Not enough credits for this wager", nil)
	case errors.Is(err, models.ErrInvalidSide),
		errors.Is(err, models.ErrInvalidWagerAmount),
		errors.Is(err, models.ErrWagerBelowMinimum),
		errors.Is(err, models.ErrInvalidEntryAmount):
		api.BadRequestResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, "Failed to process wager")
	}
}
