package notification

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Joins("JOIN members ON members.id = notifications.member_id").
		Where("members.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *repository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Joins("JOIN members ON members.id = notifications.member_id").
		Where("members.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *repository) MemberBelongsToUser(ctx context.Context, memberID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ? AND user_id = ?", memberID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}
