package wager

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/models"
)

// PlaceWagerRequest stakes credits on one side of a prop. Amount is ignored in
// POOL leagues, where every bettor stakes the prop's fixed wager amount.
type PlaceWagerRequest struct {
	Side   string          `json:"side" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// WagerResponse is a placed wager. RemainingCredits is only populated on the
// placement response, where the caller just watched their balance move.
type WagerResponse struct {
	ID               uuid.UUID        `json:"id"`
	PropID           uuid.UUID        `json:"prop_id"`
	MemberID         uuid.UUID        `json:"member_id"`
	Side             string           `json:"side"`
	Amount           decimal.Decimal  `json:"amount"`
	RemainingCredits *decimal.Decimal `json:"remaining_credits,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// SideSummary aggregates one side of a pool.
type SideSummary struct {
	Side        string          `json:"side"`
	WagerCount  int             `json:"wager_count"`
	TotalStaked decimal.Decimal `json:"total_staked"`
}

// PoolResponse is the presentation view of a prop's wager pool.
type PoolResponse struct {
	PropID      uuid.UUID       `json:"prop_id"`
	TotalStaked decimal.Decimal `json:"total_staked"`
	Sides       []SideSummary   `json:"sides"`
	Wagers      []WagerResponse `json:"wagers"`
}

func toWagerResponse(w *models.Wager) *WagerResponse {
	return &WagerResponse{
		ID:        w.ID,
		PropID:    w.PropID,
		MemberID:  w.MemberID,
		Side:      w.Side,
		Amount:    w.Amount,
		CreatedAt: w.CreatedAt,
	}
}

func toPoolResponse(prop *models.Prop, pool models.WagerPool) *PoolResponse {
	resp := &PoolResponse{
		PropID:      prop.ID,
		TotalStaked: pool.TotalStaked(),
		Sides:       make([]SideSummary, 0, 2),
		Wagers:      make([]WagerResponse, 0, len(pool)),
	}
	for _, side := range prop.Kind.Sides() {
		onSide, _ := pool.PartitionBySide(side)
		resp.Sides = append(resp.Sides, SideSummary{
			Side:        side,
			WagerCount:  len(onSide),
			TotalStaked: onSide.TotalStaked(),
		})
	}
	for i := range pool {
		resp.Wagers = append(resp.Wagers, *toWagerResponse(&pool[i]))
	}
	return resp
}
