package notification

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propleague/ante/app/api"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/models"
)

type Handler struct {
	service Service
}

// NewHandler creates a new notification handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List notifications
// @Description Returns the caller's notifications across all leagues, newest first
// @Tags notifications
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} api.Response{data=[]NotificationResponse}
// @Failure 401 {object} api.Response
// @Security BearerAuth
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		api.BadRequestResponse(c, "Invalid query parameters")
		return
	}
	filter.Normalize()

	notifications, total, err := h.service.List(c.Request.Context(), userID, &filter)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list notifications")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PerPage)))
	api.PaginatedResponse(c, "Notifications retrieved successfully", notifications, api.PaginationMeta{
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    filter.Page < totalPages,
		HasPrev:    filter.Page > 1,
	})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Stamps the notification as read; marking twice keeps the first timestamp
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} api.Response{data=NotificationResponse}
// @Failure 403 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid notification ID")
		return
	}

	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	resp, err := h.service.MarkRead(c.Request.Context(), userID, notificationID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Notification")
		case errors.Is(err, models.ErrForbidden):
			api.ForbiddenResponse(c, "Notification belongs to another member")
		default:
			api.InternalErrorResponse(c, "Failed to mark notification as read")
		}
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Notification marked as read", resp)
}
