package prop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/propleague/ante/internal/sanitizer"
	"github.com/propleague/ante/models"
)

type service struct {
	repo      Repository
	sanitizer sanitizer.HTMLStripperer
	notifier  Notifier
}

// NewService creates a new prop service. notifier may be nil.
func NewService(repo Repository, htmlSanitizer sanitizer.HTMLStripperer, notifier Notifier) Service {
	return &service{
		repo:      repo,
		sanitizer: htmlSanitizer,
		notifier:  notifier,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreatePropRequest) (*PropResponse, error) {
	if _, err := s.repo.GetLeague(ctx, req.LeagueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("load league: %w", err)
	}

	creator, err := s.repo.GetMember(ctx, req.LeagueID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}

	if req.TargetMemberID != nil {
		target, err := s.repo.GetMemberByID(ctx, *req.TargetMemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrInvalidMemberID
			}
			return nil, fmt.Errorf("load target member: %w", err)
		}
		if target.LeagueID != req.LeagueID {
			return nil, models.ErrInvalidMemberID
		}
	}

	now := time.Now().UTC()
	prop := &models.Prop{
		LeagueID:        req.LeagueID,
		CreatorMemberID: creator.ID,
		TargetMemberID:  req.TargetMemberID,
		Question:        s.sanitizer.StripHTML(req.Question),
		Kind:            req.Kind,
		WagerAmount:     req.WagerAmount,
		OddsMultiplier:  req.OddsMultiplier,
		BettingDeadline: req.BettingDeadline,
		Status:          models.PropStatusLive,
	}
	if err := prop.Validate(); err != nil {
		return nil, err
	}
	if !now.Before(prop.BettingDeadline) {
		return nil, models.ErrInvalidDeadline
	}

	if err := s.repo.Create(ctx, prop); err != nil {
		return nil, fmt.Errorf("create prop: %w", err)
	}

	if s.notifier != nil && prop.TargetMemberID != nil && *prop.TargetMemberID != creator.ID {
		s.notifier.NotifyPropOnYou(ctx, prop, creator.ID)
	}
	return toPropResponse(prop, now), nil
}

func (s *service) Get(ctx context.Context, userID, propID uuid.UUID) (*PropResponse, error) {
	prop, err := s.loadForMember(ctx, userID, propID)
	if err != nil {
		return nil, err
	}

	pool, err := s.repo.GetWagers(ctx, propID)
	if err != nil {
		return nil, fmt.Errorf("load wager pool: %w", err)
	}

	resp := toPropResponse(prop, time.Now().UTC())
	attachPool(resp, prop.Kind, pool)
	return resp, nil
}

func (s *service) ListByLeague(ctx context.Context, userID, leagueID uuid.UUID) ([]PropResponse, error) {
	if _, err := s.repo.GetMember(ctx, leagueID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotLeagueMember
		}
		return nil, fmt.Errorf("load member: %w", err)
	}

	props, err := s.repo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list props: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]PropResponse, 0, len(props))
	for i := range props {
		responses = append(responses, *toPropResponse(&props[i], now))
	}
	return responses, nil
}

func (s *service) loadForMember(ctx context.Context, userID, propID uuid.UUID) (*models.Prop, error) {
	prop, err := s.repo.GetByID(ctx, propID)
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
	return prop, nil
}
