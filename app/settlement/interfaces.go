package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

// Repository defines the persistence surface settlement runs against. The
// *ForUpdate variants take row locks and must only be called inside a
// transaction obtained through WithTx.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetPropForUpdate(ctx context.Context, propID uuid.UUID) (*models.Prop, error)
	GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error)
	GetMembersForUpdate(ctx context.Context, memberIDs []uuid.UUID) ([]models.Member, error)

	UpdateProp(ctx context.Context, prop *models.Prop) error
	UpdateMemberCredits(ctx context.Context, member *models.Member) error
	CreateEntry(ctx context.Context, entry *models.Entry) error
}

// Service settles props: resolve pays the winners, cancel refunds everyone.
type Service interface {
	Resolve(ctx context.Context, userID, propID uuid.UUID, req *ResolvePropRequest) (*SettlementResponse, error)
	Cancel(ctx context.Context, userID, propID uuid.UUID) (*SettlementResponse, error)
}

// Notifier receives settlement outcomes after the transaction commits.
// Implementations must be best-effort; a failed notification never unwinds a
// settlement.
type Notifier interface {
	NotifyBetWon(ctx context.Context, prop *models.Prop, memberID uuid.UUID, amount decimal.Decimal)
	NotifyPropSettled(ctx context.Context, prop *models.Prop, memberIDs []uuid.UUID)
}
