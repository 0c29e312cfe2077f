package wager

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

// Repository defines the persistence surface for wager placement. The
// *ForUpdate variants take row locks and belong inside a WithTx transaction.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetPropForUpdate(ctx context.Context, propID uuid.UUID) (*models.Prop, error)
	GetProp(ctx context.Context, propID uuid.UUID) (*models.Prop, error)
	GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	GetMemberForUpdate(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error)
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error)
	GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error)

	CreateWager(ctx context.Context, wager *models.Wager) error
	UpdateMemberCredits(ctx context.Context, member *models.Member) error
	CreateEntry(ctx context.Context, entry *models.Entry) error
}

// Service places wagers and reads pools.
type Service interface {
	Place(ctx context.Context, userID, propID uuid.UUID, req *PlaceWagerRequest) (*WagerResponse, error)
	GetPool(ctx context.Context, userID, propID uuid.UUID) (*PoolResponse, error)
}

// Notifier is told about wagers landing on a targeted member, after commit.
type Notifier interface {
	NotifyBetOnYou(ctx context.Context, prop *models.Prop, actorMemberID uuid.UUID)
}
