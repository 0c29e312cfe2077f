package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error)
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	MemberBelongsToUser(ctx context.Context, memberID, userID uuid.UUID) (bool, error)
	Update(ctx context.Context, n *models.Notification) error
}

// Service reads a member's notification feed and records new events. The
// Notify* methods implement the emitter contracts of the prop, wager and
// settlement modules; they log failures instead of returning them so a missed
// notification never fails the operation that produced it.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]NotificationResponse, int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error)

	NotifyPropOnYou(ctx context.Context, prop *models.Prop, creatorMemberID uuid.UUID)
	NotifyBetOnYou(ctx context.Context, prop *models.Prop, actorMemberID uuid.UUID)
	NotifyBetWon(ctx context.Context, prop *models.Prop, memberID uuid.UUID, amount decimal.Decimal)
	NotifyPropSettled(ctx context.Context, prop *models.Prop, memberIDs []uuid.UUID)
}
