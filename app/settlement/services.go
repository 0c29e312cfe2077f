package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/models"
)

type service struct {
	db       *gorm.DB
	repo     Repository
	engine   Engine
	notifier Notifier
}

// NewService creates a new settlement service. notifier may be nil, in which
// case no settlement events are emitted.
func NewService(db *gorm.DB, repo Repository, engine Engine, notifier Notifier) Service {
	return &service{
		db:       db,
		repo:     repo,
		engine:   engine,
		notifier: notifier,
	}
}

func (s *service) Resolve(ctx context.Context, userID, propID uuid.UUID, req *ResolvePropRequest) (*SettlementResponse, error) {
	var (
		resp         *SettlementResponse
		settled      *models.Prop
		participants []uuid.UUID
		wins         []Payout
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		prop, league, err := s.loadForSettlement(ctx, repoTx, userID, propID)
		if err != nil {
			return err
		}

		pool, err := repoTx.GetWagers(ctx, propID)
		if err != nil {
			return fmt.Errorf("load wager pool: %w", err)
		}

		outcome, err := s.engine.ComputePayouts(league, prop, pool, req.WinningSide)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if outcome.FinalStatus == models.PropStatusResolved {
			err = prop.Resolve(outcome.WinningSide, now)
		} else {
			err = prop.Cancel(now)
		}
		if err != nil {
			return err
		}

		if err := s.applyOutcome(ctx, repoTx, prop, outcome); err != nil {
			return err
		}

		resp = toSettlementResponse(prop, outcome)
		settled = prop
		participants = pool.MemberIDs()
		for _, p := range outcome.Payouts {
			if p.Kind == PayoutKindWin {
				wins = append(wins, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifySettled(ctx, settled, participants, wins)
	return resp, nil
}

func (s *service) Cancel(ctx context.Context, userID, propID uuid.UUID) (*SettlementResponse, error) {
	var (
		resp         *SettlementResponse
		settled      *models.Prop
		participants []uuid.UUID
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)

		prop, _, err := s.loadForSettlement(ctx, repoTx, userID, propID)
		if err != nil {
			return err
		}

		pool, err := repoTx.GetWagers(ctx, propID)
		if err != nil {
			return fmt.Errorf("load wager pool: %w", err)
		}

		outcome := s.engine.ComputeRefunds(pool)
		if err := prop.Cancel(time.Now().UTC()); err != nil {
			return err
		}

		if err := s.applyOutcome(ctx, repoTx, prop, outcome); err != nil {
			return err
		}

		resp = toSettlementResponse(prop, outcome)
		settled = prop
		participants = pool.MemberIDs()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifySettled(ctx, settled, participants, nil)
	return resp, nil
}

// loadForSettlement locks the prop row and checks that the caller owns the
// league and that the prop is still settleable. The lock blocks concurrent
// wager placement until the settlement transaction commits.
func (s *service) loadForSettlement(ctx context.Context, repoTx Repository, userID, propID uuid.UUID) (*models.Prop, *models.League, error) {
	prop, err := repoTx.GetPropForUpdate(ctx, propID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.ErrRecordNotFound
		}
		return nil, nil, fmt.Errorf("load prop: %w", err)
	}

	league, err := repoTx.GetLeague(ctx, prop.LeagueID)
	if err != nil {
		return nil, nil, fmt.Errorf("load league: %w", err)
	}

	if !league.IsOwner(userID) {
		return nil, nil, models.ErrForbidden
	}
	if prop.IsFinal() {
		return nil, nil, models.ErrPropFinalized
	}
	return prop, league, nil
}

// applyOutcome writes every credit, its ledger entry and the terminal prop
// status. Any wager whose member row cannot be loaded aborts the whole
// settlement; a payout is never silently skipped.
func (s *service) applyOutcome(ctx context.Context, repoTx Repository, prop *models.Prop, outcome *Outcome) error {
	memberIDs := make([]uuid.UUID, 0, len(outcome.Payouts))
	for _, p := range outcome.Payouts {
		memberIDs = append(memberIDs, p.MemberID)
	}

	members, err := repoTx.GetMembersForUpdate(ctx, memberIDs)
	if err != nil {
		return fmt.Errorf("lock member accounts: %w", err)
	}
	byID := make(map[uuid.UUID]*models.Member, len(members))
	for i := range members {
		byID[members[i].ID] = &members[i]
	}

	for _, p := range outcome.Payouts {
		member, ok := byID[p.MemberID]
		if !ok {
			return fmt.Errorf("%w: wager %s", models.ErrMemberMissing, p.WagerID)
		}

		if err := member.Credit(p.Amount); err != nil {
			return fmt.Errorf("credit member %s: %w", member.ID, err)
		}
		if err := repoTx.UpdateMemberCredits(ctx, member); err != nil {
			return fmt.Errorf("persist member %s: %w", member.ID, err)
		}

		var entry *models.Entry
		if p.Kind == PayoutKindWin {
			entry = models.NewPayoutEntry(member, p.Amount, prop.ID)
		} else {
			entry = models.NewRefundEntry(member, p.Amount, prop.ID)
		}
		if err := repoTx.CreateEntry(ctx, entry); err != nil {
			return fmt.Errorf("write ledger entry: %w", err)
		}
	}

	if err := repoTx.UpdateProp(ctx, prop); err != nil {
		return fmt.Errorf("persist prop status: %w", err)
	}
	return nil
}

func (s *service) notifySettled(ctx context.Context, prop *models.Prop, participants []uuid.UUID, wins []Payout) {
	if s.notifier == nil {
		return
	}
	for _, p := range wins {
		s.notifier.NotifyBetWon(ctx, prop, p.MemberID, p.Amount)
	}
	s.notifier.NotifyPropSettled(ctx, prop, participants)
}
