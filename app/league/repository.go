package league

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new league repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateLeague(ctx context.Context, league *models.League) error {
	return r.db.WithContext(ctx).Create(league).Error
}

func (r *repository) GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	var league models.League
	if err := r.db.WithContext(ctx).First(&league, "id = ?", leagueID).Error; err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *repository) GetLeagueByInviteCode(ctx context.Context, code string) (*models.League, error) {
	var league models.League
	if err := r.db.WithContext(ctx).First(&league, "invite_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *repository) DeleteLeague(ctx context.Context, leagueID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.League{}, "id = ?", leagueID).Error
}

func (r *repository) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error) {
	var leagues []models.League
	err := r.db.WithContext(ctx).
		Joins("JOIN members ON members.league_id = leagues.id").
		Where("members.user_id = ?", userID).
		Order("leagues.created_at DESC").
		Find(&leagues).Error
	if err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *repository) CreateMember(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
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

func (r *repository) GetMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("league_id = ?", leagueID).
		Order("credits DESC, created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) DeleteMember(ctx context.Context, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", memberID).Error
}

func (r *repository) CountMembers(ctx context.Context, leagueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("league_id = ?", leagueID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateEntry(ctx context.Context, entry *models.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListEntries(ctx context.Context, memberID uuid.UUID) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
