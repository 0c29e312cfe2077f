package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/propleague/ante/internal/logger"
	"github.com/propleague/ante/models"
)

type service struct {
	repo Repository
	log  logger.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, log logger.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]NotificationResponse, int64, error) {
	filter.Normalize()

	total, err := s.repo.CountForUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	notifications, err := s.repo.ListForUser(ctx, userID, filter.PerPage, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}
	return responses, total, nil
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("load notification: %w", err)
	}

	owned, err := s.repo.MemberBelongsToUser(ctx, n.MemberID, userID)
	if err != nil {
		return nil, fmt.Errorf("check ownership: %w", err)
	}
	if !owned {
		return nil, models.ErrForbidden
	}

	if !n.IsRead() {
		n.MarkRead(time.Now().UTC())
		if err := s.repo.Update(ctx, n); err != nil {
			return nil, fmt.Errorf("mark read: %w", err)
		}
	}

	resp := toNotificationResponse(n)
	return &resp, nil
}

func (s *service) NotifyPropOnYou(ctx context.Context, prop *models.Prop, creatorMemberID uuid.UUID) {
	if prop.TargetMemberID == nil {
		return
	}
	s.emit(ctx, &models.Notification{
		MemberID: *prop.TargetMemberID,
		Kind:     models.NotificationPropOnYou,
		PropID:   &prop.ID,
		ActorID:  &creatorMemberID,
		Message:  fmt.Sprintf("A new prop is about you: %q", prop.Question),
	})
}

func (s *service) NotifyBetOnYou(ctx context.Context, prop *models.Prop, actorMemberID uuid.UUID) {
	if prop.TargetMemberID == nil {
		return
	}
	s.emit(ctx, &models.Notification{
		MemberID: *prop.TargetMemberID,
		Kind:     models.NotificationBetOnYou,
		PropID:   &prop.ID,
		ActorID:  &actorMemberID,
		Message:  fmt.Sprintf("Someone wagered on %q", prop.Question),
	})
}

func (s *service) NotifyBetWon(ctx context.Context, prop *models.Prop, memberID uuid.UUID, amount decimal.Decimal) {
	s.emit(ctx, &models.Notification{
		MemberID: memberID,
		Kind:     models.NotificationBetWon,
		PropID:   &prop.ID,
		Message:  fmt.Sprintf("You won %s credits on %q", amount.String(), prop.Question),
	})
}

func (s *service) NotifyPropSettled(ctx context.Context, prop *models.Prop, memberIDs []uuid.UUID) {
	kind := models.NotificationPropResolved
	message := fmt.Sprintf("Prop %q was resolved", prop.Question)
	if prop.Status == models.PropStatusCanceled {
		kind = models.NotificationPropCanceled
		message = fmt.Sprintf("Prop %q was canceled and stakes refunded", prop.Question)
	}
	for _, memberID := range memberIDs {
		s.emit(ctx, &models.Notification{
			MemberID: memberID,
			Kind:     kind,
			PropID:   &prop.ID,
			Message:  message,
		})
	}
}

// emit persists one notification, logging instead of failing: the wager or
// settlement that produced the event has already committed.
func (s *service) emit(ctx context.Context, n *models.Notification) {
	if err := n.Validate(); err != nil {
		s.log.Error(err, map[string]interface{}{"kind": string(n.Kind)})
		return
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error(err, map[string]interface{}{"kind": string(n.Kind)})
	}
}
