package league

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/internal/validator"
	"github.com/propleague/ante/models"
)

// Handler handles HTTP requests for league operations
type Handler struct {
	service Service
}

// NewHandler creates a new league handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Create a league
// @Description  Start a league; the caller becomes owner and first member
// @Tags         leagues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateLeagueRequest  true  "League details"
// @Success      201      {object}  api.Response{data=LeagueResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.CreatedResponse(c, "League created", resp)
}

// Join godoc
// @Summary      Join a league
// @Description  Join a league by invite code; a seeded member account is opened
// @Tags         leagues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      JoinLeagueRequest  true  "Invite code"
// @Success      200      {object}  api.Response{data=LeagueResponse}
// @Failure      404      {object}  api.Response{error=api.ErrorInfo}
// @Failure      409      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/join [post]
func (h *Handler) Join(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req JoinLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Join(c.Request.Context(), userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Joined league", resp)
}

// Leave godoc
// @Summary      Leave a league
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id}/leave [post]
func (h *Handler) Leave(c *gin.Context) {
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

	if err := h.service.Leave(c.Request.Context(), userID, leagueID); err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Left league", nil)
}

// Delete godoc
// @Summary      Delete a league
// @Description  Owner-only; removes the league and all its data
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
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

	if err := h.service.Delete(c.Request.Context(), userID, leagueID); err != nil {
		h.respondError(c, err)
		return
	}

	api.DeletedResponse(c, "League deleted")
}

// ListMine godoc
// @Summary      List the caller's leagues
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=[]LeagueResponse}
// @Router       /api/v1/leagues [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.ListResponse(c, "Leagues retrieved", resp, len(resp))
}

// Members godoc
// @Summary      List a league's members
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response{data=[]MemberResponse}
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id}/members [get]
func (h *Handler) Members(c *gin.Context) {
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

	resp, err := h.service.Members(c.Request.Context(), userID, leagueID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.ListResponse(c, "Members retrieved", resp, len(resp))
}

// Leaderboard godoc
// @Summary      League leaderboard
// @Description  Members ranked by credits, cached briefly
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response{data=[]LeaderboardRow}
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id}/leaderboard [get]
func (h *Handler) Leaderboard(c *gin.Context) {
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

	resp, err := h.service.Leaderboard(c.Request.Context(), userID, leagueID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.ListResponse(c, "Leaderboard retrieved", resp, len(resp))
}

// Ledger godoc
// @Summary      The caller's credit ledger in a league
// @Description  Immutable balance history, newest first
// @Tags         leagues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "League ID"
// @Success      200  {object}  api.Response{data=[]EntryResponse}
// @Failure      403  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/leagues/{id}/ledger [get]
func (h *Handler) Ledger(c *gin.Context) {
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

	resp, err := h.service.Ledger(c.Request.Context(), userID, leagueID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.ListResponse(c, "Ledger retrieved", resp, len(resp))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound), errors.Is(err, models.ErrInvalidInviteCode):
		api.NotFoundResponse(c, "League")
	case errors.Is(err, models.ErrAlreadyMember):
		api.ConflictResponse(c, "You are already a member of this league")
	case errors.Is(err, models.ErrNotLeagueMember):
		api.ForbiddenResponse(c, "You are not a member of this league")
	case errors.Is(err, models.ErrForbidden):
		api.ForbiddenResponse(c, "Not allowed for this league")
	case errors.Is(err, models.ErrInvalidLeagueName),
		errors.Is(err, models.ErrInvalidLeagueMode),
		errors.Is(err, models.ErrInvalidStartingPot):
		api.BadRequestResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, "Failed to process league")
	}
}
