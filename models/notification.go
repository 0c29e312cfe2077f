package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationKind identifies what happened; payload fields are typed, not a
// loose map.
type NotificationKind string

const (
	// NotificationPropOnYou: a prop names the member as its target.
	NotificationPropOnYou NotificationKind = "PROP_ON_YOU"
	// NotificationBetOnYou: someone wagered on a prop targeting the member.
	NotificationBetOnYou NotificationKind = "BET_ON_YOU"
	// NotificationBetWon: the member's wager paid out.
	NotificationBetWon NotificationKind = "BET_WON"
	// NotificationPropResolved: a prop the member wagered on was resolved.
	NotificationPropResolved NotificationKind = "PROP_RESOLVED"
	// NotificationPropCanceled: a prop the member wagered on was canceled.
	NotificationPropCanceled NotificationKind = "PROP_CANCELED"
)

// IsValid reports whether the kind is one of the supported notification kinds.
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationPropOnYou, NotificationBetOnYou, NotificationBetWon,
		NotificationPropResolved, NotificationPropCanceled:
		return true
	}
	return false
}

// Notification is a persisted event record for one member.
type Notification struct {
	ID       uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_member" json:"member_id"`
	Kind     NotificationKind `gorm:"type:varchar(20);not null" json:"kind"`
	PropID   *uuid.UUID       `gorm:"type:uuid" json:"prop_id,omitempty"`
	ActorID  *uuid.UUID       `gorm:"type:uuid" json:"actor_id,omitempty"`
	Message  string           `gorm:"type:text;not null" json:"message"`
	ReadAt   *time.Time       `json:"read_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_created_at" json:"created_at"`

	// Associations
	Member *Member `gorm:"foreignKey:MemberID" json:"-"`
}

// TableName specifies the table name for Notification model
func (*Notification) TableName() string {
	return "notifications"
}

// BeforeCreate sets up the model before creation
func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead stamps the notification as read. Marking twice keeps the first
// timestamp.
func (n *Notification) MarkRead(now time.Time) {
	if n.ReadAt == nil {
		n.ReadAt = &now
	}
}

// Validate performs validation on the notification model
func (n *Notification) Validate() error {
	if n.MemberID == uuid.Nil {
		return ErrInvalidMemberID
	}
	if !n.Kind.IsValid() {
		return ErrInvalidNotificationKind
	}
	return nil
}
