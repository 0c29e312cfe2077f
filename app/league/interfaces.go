package league

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateLeague(ctx context.Context, league *models.League) error
	GetLeagueByID(ctx context.Context, leagueID uuid.UUID) (*models.League, error)
	GetLeagueByInviteCode(ctx context.Context, code string) (*models.League, error)
	DeleteLeague(ctx context.Context, leagueID uuid.UUID) error
	ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]models.League, error)

	CreateMember(ctx context.Context, member *models.Member) error
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.Member, error)
	GetMembers(ctx context.Context, leagueID uuid.UUID) ([]models.Member, error)
	DeleteMember(ctx context.Context, memberID uuid.UUID) error
	CountMembers(ctx context.Context, leagueID uuid.UUID) (int64, error)

	CreateEntry(ctx context.Context, entry *models.Entry) error
	ListEntries(ctx context.Context, memberID uuid.UUID) ([]models.Entry, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateLeagueRequest) (*LeagueResponse, error)
	Join(ctx context.Context, userID uuid.UUID, req *JoinLeagueRequest) (*LeagueResponse, error)
	Leave(ctx context.Context, userID, leagueID uuid.UUID) error
	Delete(ctx context.Context, userID, leagueID uuid.UUID) error
	ListMine(ctx context.Context, userID uuid.UUID) ([]LeagueResponse, error)
	Members(ctx context.Context, userID, leagueID uuid.UUID) ([]MemberResponse, error)
	Leaderboard(ctx context.Context, userID, leagueID uuid.UUID) ([]LeaderboardRow, error)
	Ledger(ctx context.Context, userID, leagueID uuid.UUID) ([]EntryResponse, error)
}
