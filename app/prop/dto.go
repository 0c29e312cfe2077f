package prop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/internal/validator"
	"github.com/propleague/ante/models"
)

const maxQuestionLength = 500

// CreatePropRequest opens a new prop in a league.
type CreatePropRequest struct {
	LeagueID        uuid.UUID        `json:"league_id" binding:"required"`
	Question        string           `json:"question" binding:"required"`
	Kind            models.PropKind  `json:"kind" binding:"required"`
	WagerAmount     decimal.Decimal  `json:"wager_amount" binding:"required"`
	OddsMultiplier  *decimal.Decimal `json:"odds_multiplier,omitempty"`
	BettingDeadline time.Time        `json:"betting_deadline" binding:"required"`
	TargetMemberID  *uuid.UUID       `json:"target_member_id,omitempty"`
}

// Validate checks the request fields that gin bindings cannot express.
func (r *CreatePropRequest) Validate(v *validator.Validator, now time.Time) bool {
	v.Check(validator.NotBlank(r.Question), "question", "must not be blank")
	v.Check(validator.MaxRunes(r.Question, maxQuestionLength), "question", "must be at most 500 characters")
	v.Check(r.Kind.IsValid(), "kind", "must be BINARY or THRESHOLD")
	v.Check(r.WagerAmount.GreaterThan(decimal.Zero) && r.WagerAmount.IsInteger(),
		"wager_amount", "must be a positive whole number")
	v.Check(now.Before(r.BettingDeadline), "betting_deadline", "must be in the future")
	if r.OddsMultiplier != nil {
		v.Check(r.OddsMultiplier.GreaterThan(decimal.Zero), "odds_multiplier", "must be greater than zero")
	}
	return v.Valid()
}

// SidePool aggregates the wagers on one side for presentation.
type SidePool struct {
	Side        string          `json:"side"`
	WagerCount  int             `json:"wager_count"`
	TotalStaked decimal.Decimal `json:"total_staked"`
}

// PropResponse is the read model for a prop. Locked is derived from the
// deadline at render time, never stored.
type PropResponse struct {
	ID              uuid.UUID         `json:"id"`
	LeagueID        uuid.UUID         `json:"league_id"`
	CreatorMemberID uuid.UUID         `json:"creator_member_id"`
	TargetMemberID  *uuid.UUID        `json:"target_member_id,omitempty"`
	Question        string            `json:"question"`
	Kind            models.PropKind   `json:"kind"`
	Sides           []string          `json:"sides"`
	WagerAmount     decimal.Decimal   `json:"wager_amount"`
	OddsMultiplier  *decimal.Decimal  `json:"odds_multiplier,omitempty"`
	BettingDeadline time.Time         `json:"betting_deadline"`
	Status          models.PropStatus `json:"status"`
	Locked          bool              `json:"locked"`
	WinningSide     *string           `json:"winning_side,omitempty"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	Pool            []SidePool        `json:"pool,omitempty"`
}

func toPropResponse(p *models.Prop, now time.Time) *PropResponse {
	return &PropResponse{
		ID:              p.ID,
		LeagueID:        p.LeagueID,
		CreatorMemberID: p.CreatorMemberID,
		TargetMemberID:  p.TargetMemberID,
		Question:        p.Question,
		Kind:            p.Kind,
		Sides:           p.Kind.Sides(),
		WagerAmount:     p.WagerAmount,
		OddsMultiplier:  p.OddsMultiplier,
		BettingDeadline: p.BettingDeadline,
		Status:          p.Status,
		Locked:          p.IsLocked(now),
		WinningSide:     p.WinningSide,
		ResolvedAt:      p.ResolvedAt,
		CreatedAt:       p.CreatedAt,
	}
}

func attachPool(resp *PropResponse, kind models.PropKind, pool models.WagerPool) {
	for _, side := range kind.Sides() {
		onSide, _ := pool.PartitionBySide(side)
		resp.Pool = append(resp.Pool, SidePool{
			Side:        side,
			WagerCount:  len(onSide),
			TotalStaked: onSide.TotalStaked(),
		})
	}
}
