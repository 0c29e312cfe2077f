package settlement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/models"
)

// ResolvePropRequest names the side that won.
type ResolvePropRequest struct {
	WinningSide string `json:"winning_side" binding:"required"`
}

// PayoutResponse is one credit applied by a settlement.
type PayoutResponse struct {
	WagerID  uuid.UUID       `json:"wager_id"`
	MemberID uuid.UUID       `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     PayoutKind      `json:"kind"`
}

// SettlementResponse describes a completed resolve or cancel.
type SettlementResponse struct {
	PropID      uuid.UUID         `json:"prop_id"`
	Status      models.PropStatus `json:"status"`
	WinningSide *string           `json:"winning_side,omitempty"`
	TotalPaid   decimal.Decimal   `json:"total_paid"`
	Payouts     []PayoutResponse  `json:"payouts"`
	SettledAt   time.Time         `json:"settled_at"`
}

func toSettlementResponse(prop *models.Prop, outcome *Outcome) *SettlementResponse {
	resp := &SettlementResponse{
		PropID:      prop.ID,
		Status:      prop.Status,
		WinningSide: prop.WinningSide,
		TotalPaid:   outcome.TotalPaid(),
		Payouts:     make([]PayoutResponse, 0, len(outcome.Payouts)),
	}
	if prop.ResolvedAt != nil {
		resp.SettledAt = *prop.ResolvedAt
	}
	for _, p := range outcome.Payouts {
		resp.Payouts = append(resp.Payouts, PayoutResponse{
			WagerID:  p.WagerID,
			MemberID: p.MemberID,
			Amount:   p.Amount,
			Kind:     p.Kind,
		})
	}
	return resp
}
