package league

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/propleague/ante/internal/cache"
	"github.com/propleague/ante/internal/logger"
	"github.com/propleague/ante/models"
)

var decimalDefaultStartingCredits = decimal.NewFromInt(1000)

type service struct {
	db     *gorm.DB
	repo   Repository
	cache  cache.Cache[string]
	config *Config
	log    logger.Logger
}

// NewService creates a new league service.
func NewService(db *gorm.DB, repo Repository, c cache.Cache[string], config *Config, log logger.Logger) Service {
	return &service{
		db:     db,
		repo:   repo,
		cache:  c,
		config: config,
		log:    log,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateLeagueRequest) (*LeagueResponse, error) {
	league := &models.League{
		OwnerID:         userID,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Mode:            req.Mode,
		StartingCredits: req.StartingCredits,
	}
	if league.Mode == "" {
		league.Mode = models.PayoutModePool
	}
	if league.StartingCredits.IsZero() {
		league.StartingCredits = decimalDefaultStartingCredits
	}
	if err := league.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		if err := repoTx.CreateLeague(ctx, league); err != nil {
			return fmt.Errorf("create league: %w", err)
		}
		return s.seedMember(ctx, repoTx, league, userID)
	})
	if err != nil {
		return nil, err
	}
	return toLeagueResponse(league), nil
}

func (s *service) Join(ctx context.Context, userID uuid.UUID, req *JoinLeagueRequest) (*LeagueResponse, error) {
	var league *models.League

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		var err error
		league, err = repoTx.GetLeagueByInviteCode(ctx, strings.ToUpper(strings.TrimSpace(req.InviteCode)))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrInvalidInviteCode
			}
			return fmt.Errorf("lookup invite code: %w", err)
		}

		if _, err := repoTx.GetMember(ctx, league.ID, userID); err == nil {
			return models.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check membership: %w", err)
		}

		return s.seedMember(ctx, repoTx, league, userID)
	})
	if err != nil {
		return nil, err
	}
	return toLeagueResponse(league), nil
}

func (s *service) Leave(ctx context.Context, userID, leagueID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		league, err := repoTx.GetLeagueByID(ctx, leagueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRecordNotFound
			}
			return fmt.Errorf("load league: %w", err)
		}

		member, err := repoTx.GetMember(ctx, leagueID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotLeagueMember
			}
			return fmt.Errorf("load member: %w", err)
		}

		count, err := repoTx.CountMembers(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("count members: %w", err)
		}

		// The owner stays until everyone else is gone; the league dies
		// with its last member.
		if league.IsOwner(userID) && count > 1 {
			return models.ErrForbidden
		}

		if err := repoTx.DeleteMember(ctx, member.ID); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}
		if count == 1 {
			if err := repoTx.DeleteLeague(ctx, leagueID); err != nil {
				return fmt.Errorf("delete empty league: %w", err)
			}
		}
		return nil
	})
}

func (s *service) Delete(ctx context.Context, userID, leagueID uuid.UUID) error {
	league, err := s.repo.GetLeagueByID(ctx, leagueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRecordNotFound
		}
		return fmt.Errorf("load league: %w", err)
	}
	if !league.IsOwner(userID) {
		return models.ErrForbidden
	}
	return s.repo.DeleteLeague(ctx, leagueID)
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]LeagueResponse, error) {
	leagues, err := s.repo.ListLeaguesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	responses := make([]LeagueResponse, 0, len(leagues))
	for i := range leagues {
		responses = append(responses, *toLeagueResponse(&leagues[i]))
	}
	return responses, nil
}

func (s *service) Members(ctx context.Context, userID, leagueID uuid.UUID) ([]MemberResponse, error) {
	members, err := s.membersForMember(ctx, userID, leagueID)
	if err != nil {
		return nil, err
	}
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, toMemberResponse(&members[i]))
	}
	return responses, nil
}

func (s *service) Leaderboard(ctx context.Context, userID, leagueID uuid.UUID) ([]LeaderboardRow, error) {
	if _, err := s.repo.GetMember(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}

	key := leaderboardKey(leagueID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var rows []LeaderboardRow
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			return rows, nil
		}
		s.log.Error(fmt.Errorf("corrupt leaderboard cache entry for league %s", leagueID), nil)
	}

	members, err := s.repo.GetMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	rows := toLeaderboard(members)

	if encoded, err := json.Marshal(rows); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.config.LeaderboardCacheTTL); err != nil {
			s.log.Error(err, map[string]interface{}{"league_id": leagueID.String()})
		}
	}
	return rows, nil
}

func (s *service) Ledger(ctx context.Context, userID, leagueID uuid.UUID) ([]EntryResponse, error) {
	member, err := s.repo.GetMember(ctx, leagueID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}

	entries, err := s.repo.ListEntries(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toEntryResponse(&entries[i]))
	}
	return responses, nil
}

func (s *service) membersForMember(ctx context.Context, userID, leagueID uuid.UUID) ([]models.Member, error) {
	if _, err := s.repo.GetMember(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}
	members, err := s.repo.GetMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return members, nil
}

// seedMember opens a member account with the league's starting credits and
// writes the matching seed entry.
func (s *service) seedMember(ctx context.Context, repoTx Repository, league *models.League, userID uuid.UUID) error {
	member := &models.Member{
		LeagueID: league.ID,
		UserID:   userID,
		Credits:  league.StartingCredits,
	}
	if err := repoTx.CreateMember(ctx, member); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	if err := repoTx.CreateEntry(ctx, models.NewSeedEntry(member, league.StartingCredits)); err != nil {
		return fmt.Errorf("write seed entry: %w", err)
	}
	return nil
}

func leaderboardKey(leagueID uuid.UUID) string {
	return "leaderboard:" + leagueID.String()
}
