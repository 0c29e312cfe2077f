package settlement

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/propleague/ante/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetPropForUpdate(ctx context.Context, propID uuid.UUID) (*models.Prop, error) {
	var prop models.Prop
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&prop, "id = ?", propID).Error
	if err != nil {
		return nil, err
	}
	return &prop, nil
}

func (r *repository) GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.WithContext(ctx).First(&league, "id = ?", leagueID).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
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

func (r *repository) GetMembersForUpdate(ctx context.Context, memberIDs []uuid.UUID) ([]models.Member, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	var members []models.Member
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", memberIDs).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) UpdateProp(ctx context.Context, prop *models.Prop) error {
	return r.db.WithContext(ctx).Save(prop).Error
}

func (r *repository) UpdateMemberCredits(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Model(member).Update("credits", member.Credits).Error
}

func (r *repository) CreateEntry(ctx context.Context, entry *models.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
