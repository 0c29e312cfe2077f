package prop

import (
	"context"

	"github.com/google/uuid"

	"github.com/propleague/ante/models"
)

type Repository interface {
	Create(ctx context.Context, prop *models.Prop) error
	GetByID(ctx context.Context, propID uuid.UUID) (*models.Prop, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Prop, error)
	GetLeague(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error)
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (*models.Member, error)
	GetWagers(ctx context.Context, propID uuid.UUID) (models.WagerPool, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreatePropRequest) (*PropResponse, error)
	Get(ctx context.Context, userID, propID uuid.UUID) (*PropResponse, error)
	ListByLeague(ctx context.Context, userID, leagueID uuid.UUID) ([]PropResponse, error)
}

// Notifier is told when a prop is created about a targeted member.
type Notifier interface {
	NotifyPropOnYou(ctx context.Context, prop *models.Prop, creatorMemberID uuid.UUID)
}
