package settlement

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/models"
)

// Handler handles HTTP requests for prop settlement
type Handler struct {
	service Service
}

// NewHandler creates a new settlement handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Resolve godoc
// @Summary      Resolve a prop
// @Description  Settle a live prop on its winning side and pay out winners
// @Tags         settlement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string              true  "Prop ID"
// @Param        request  body      ResolvePropRequest  true  "Winning side"
// @Success      200      {object}  api.Response{data=SettlementResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      403      {object}  api.Response{error=api.ErrorInfo}
// @Failure      409      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props/{id}/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
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

	var req ResolvePropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Resolve(c.Request.Context(), userID, propID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Prop settled", resp)
}

// Cancel godoc
// @Summary      Cancel a prop
// @Description  Cancel a live prop and refund every stake in full
// @Tags         settlement
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Prop ID"
// @Success      200  {object}  api.Response{data=SettlementResponse}
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Failure      409  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/props/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
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

	resp, err := h.service.Cancel(c.Request.Context(), userID, propID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Prop canceled", resp)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Prop")
	case errors.Is(err, models.ErrForbidden):
		api.ForbiddenResponse(c, "Only the league owner can settle props")
	case errors.Is(err, models.ErrPropFinalized):
		api.ConflictResponse(c, "Prop is already settled")
	case errors.Is(err, models.ErrInvalidSide), errors.Is(err, models.ErrMissingWinningSide):
		api.BadRequestResponse(c, "Winning side is not valid for this prop")
	default:
		api.InternalErrorResponse(c, "Failed to settle prop")
	}
}
