package wager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type service struct {
	db       *gorm.DB
	repo     Repository
	notifier Notifier
}

// NewService creates a new wager service. notifier may be nil.
func NewService(db *gorm.DB, repo Repository, notifier Notifier) Service {
	return &service{
		db:       db,
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) Place(ctx context.Context, userID, propID uuid.UUID, req *PlaceWagerRequest) (*WagerResponse, error) {
	var (
		resp   *WagerResponse
		target *models.Prop
		placer uuid.UUID
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		// The prop lock serializes placement against resolve/cancel, so
		// the status and deadline checks below hold until commit.
		prop, err := repoTx.GetPropForUpdate(ctx, propID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRecordNotFound
			}
			return fmt.Errorf("load prop: %w", err)
		}
		if !prop.AcceptsWagers(time.Now().UTC()) {
			return models.ErrBettingClosed
		}
		if !prop.SideValid(req.Side) {
			return models.ErrInvalidSide
		}

		league, err := repoTx.GetLeague(ctx, prop.LeagueID)
		if err != nil {
			return fmt.Errorf("load league: %w", err)
		}

		// Row lock on the member serializes concurrent debits against the
		// same balance: of two placements that would jointly overdraw it,
		// exactly one commits.
		member, err := repoTx.GetMemberForUpdate(ctx, prop.LeagueID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotLeagueMember
			}
			return fmt.Errorf("load member: %w", err)
		}

		pool, err := repoTx.GetWagers(ctx, propID)
		if err != nil {
			return fmt.Errorf("load wager pool: %w", err)
		}
		if pool.HasWager(member.ID) {
			return models.ErrDuplicateWager
		}

		amount, err := resolveStake(league, prop, req.Amount)
		if err != nil {
			return err
		}

		if err := member.Debit(amount); err != nil {
			return err
		}

		wager := &models.Wager{
			PropID:   prop.ID,
			MemberID: member.ID,
			Amount:   amount,
			Side:     req.Side,
		}
		if err := wager.Validate(); err != nil {
			return err
		}
		// The unique (prop_id, member_id) index backstops the HasWager
		// check against a racing insert.
		if err := repoTx.CreateWager(ctx, wager); err != nil {
			return fmt.Errorf("create wager: %w", err)
		}
		if err := repoTx.UpdateMemberCredits(ctx, member); err != nil {
			return fmt.Errorf("persist member balance: %w", err)
		}
		if err := repoTx.CreateEntry(ctx, models.NewStakeEntry(member, amount, wager.ID)); err != nil {
			return fmt.Errorf("write ledger entry: %w", err)
		}

		resp = toWagerResponse(wager)
		remaining := member.Credits
		resp.RemainingCredits = &remaining
		target = prop
		placer = member.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && target.TargetMemberID != nil && *target.TargetMemberID != placer {
		s.notifier.NotifyBetOnYou(ctx, target, placer)
	}
	return resp, nil
}

func (s *service) GetPool(ctx context.Context, userID, propID uuid.UUID) (*PoolResponse, error) {
	prop, err := s.repo.GetProp(ctx, propID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("load prop: %w", err)
	}

	if _, err := s.repo.GetMember(ctx, prop.LeagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}

	pool, err := s.repo.GetWagers(ctx, propID)
	if err != nil {
		return nil, fmt.Errorf("load wager pool: %w", err)
	}
	return toPoolResponse(prop, pool), nil
}

// resolveStake applies the league's staking rule. POOL props carry one fixed
// stake for every bettor; RANK props let the bettor choose any whole amount at
// or above the prop's minimum.
func resolveStake(league *models.League, prop *models.Prop, requested decimal.Decimal) (decimal.Decimal, error) {
	if league.Mode == models.PayoutModePool {
		return prop.WagerAmount, nil
	}

	amount := requested
	if amount.IsZero() {
		amount = prop.MinimumWager()
	}
	if amount.LessThanOrEqual(decimal.Zero) || !amount.IsInteger() {
		return decimal.Zero, models.ErrInvalidWagerAmount
	}
	if amount.LessThan(prop.MinimumWager()) {
		return decimal.Zero, models.ErrWagerBelowMinimum
	}
	return amount, nil
}
