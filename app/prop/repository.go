package prop

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new prop repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, prop *models.Prop) error {
	return r.db.WithContext(ctx).Create(prop).Error
}

func (r *repository) GetByID(ctx context.Context, propID uuid.UUID) (*models.Prop, error) {
	var prop models.Prop
	if err := r.db.WithContext(ctx).First(&prop, "id = ?", propID).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

func (r *repository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prop, error) {
	var props []models.Prop
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		Order("created_at DESC").
		Find(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (r *repository) GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	var league models.League
	if err := r.db.WithContext(ctx).First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *repository) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		First(&member, "league_id = ? AND user_id = ?", leagueID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *repository) GetMemberByID(ctx context.Context, memberID uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", memberID).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *repository) GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error) {
	var wagers []models.Wager
	err := r.db.WithContext(ctx).
		Where("prop_id = ?", propID).
		Order("created_at ASC").
		Find(&wagers).Error
	if err != nil {
		return nil, err
	}
	return wagers, nil
}
