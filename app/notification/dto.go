package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/propleague/ante/models"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ListFilter is the page window for a notification listing.
type ListFilter struct {
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// Normalize clamps the filter to sane bounds.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}
}

// Offset returns the row offset for the current page.
func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// NotificationResponse is one notification in a listing.
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	MemberID  uuid.UUID               `json:"member_id"`
	Kind      models.NotificationKind `json:"kind"`
	PropID    *uuid.UUID              `json:"prop_id,omitempty"`
	ActorID   *uuid.UUID              `json:"actor_id,omitempty"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		MemberID:  n.MemberID,
		Kind:      n.Kind,
		PropID:    n.PropID,
		ActorID:   n.ActorID,
		Message:   n.Message,
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt,
	}
}
