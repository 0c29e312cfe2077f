package settlement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/models"
)

// PayoutKind distinguishes settlement credits from cancellation refunds.
type PayoutKind string

const (
	PayoutKindWin    PayoutKind = "win"
	PayoutKindRefund PayoutKind = "refund"
)

// Payout is one credit the settlement transaction must apply.
type Payout struct {
	WagerID  uuid.UUID
	MemberID uuid.UUID
	Amount   decimal.Decimal
	Kind     PayoutKind
}

// Outcome is the full result of settling a prop: the terminal status the prop
// must take and every credit owed. The engine computes, it never persists.
type Outcome struct {
	FinalStatus models.PropStatus
	WinningSide string
	Payouts     []Payout
}

// TotalPaid sums the credits in the outcome.
func (o *Outcome) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Payouts {
		total = total.Add(p.Amount)
	}
	return total
}

// Engine computes settlement outcomes from a prop and its wager pool.
type Engine interface {
	// ComputePayouts settles a prop on the given winning side under the
	// league's payout mode. When nobody backed the winning side the outcome
	// redirects to CANCELED with a full refund of every stake.
	ComputePayouts(league *models.League, prop *models.Prop, pool models.WagerPool, winningSide string) (*Outcome, error)

	// ComputeRefunds is the explicit-cancel path: every stake comes back in
	// full and the prop lands in CANCELED.
	ComputeRefunds(pool models.WagerPool) *Outcome
}

// payoutEngine implements the Engine interface
type payoutEngine struct {
	config *Config
}

// NewPayoutEngine creates a new settlement engine
func NewPayoutEngine(config *Config) Engine {
	return &payoutEngine{
		config: config,
	}
}

func (e *payoutEngine) ComputePayouts(league *models.League, prop *models.Prop, pool models.WagerPool, winningSide string) (*Outcome, error) {
	if !prop.SideValid(winningSide) {
		return nil, models.ErrInvalidSide
	}

	winners, losers := pool.PartitionBySide(winningSide)
	winningTotal := winners.TotalStaked()

	// Zero wagers on the winning side means there is nobody to pay; the
	// whole pool is refunded and the prop cancels instead of resolving.
	if winningTotal.IsZero() {
		return e.ComputeRefunds(pool), nil
	}

	outcome := &Outcome{
		FinalStatus: models.PropStatusResolved,
		WinningSide: winningSide,
		Payouts:     make([]Payout, 0, len(winners)),
	}

	switch league.Mode {
	case models.PayoutModeRank:
		multiplier := prop.Multiplier(e.config.DefaultOddsMultiplier)
		for _, w := range winners {
			e.appendPayout(outcome, &w, w.Amount.Mul(multiplier).Floor())
		}
	default:
		// Pari-mutuel: stake back plus a pro-rata share of the losing
		// pool. Multiply before dividing so the floor only eats the
		// final fraction, not an intermediate one.
		losingTotal := losers.TotalStaked()
		for _, w := range winners {
			share := w.Amount.Mul(losingTotal).Div(winningTotal)
			e.appendPayout(outcome, &w, w.Amount.Add(share).Floor())
		}
	}

	return outcome, nil
}

func (e *payoutEngine) ComputeRefunds(pool models.WagerPool) *Outcome {
	outcome := &Outcome{
		FinalStatus: models.PropStatusCanceled,
		Payouts:     make([]Payout, 0, len(pool)),
	}
	for _, w := range pool {
		outcome.Payouts = append(outcome.Payouts, Payout{
			WagerID:  w.ID,
			MemberID: w.MemberID,
			Amount:   w.Amount,
			Kind:     PayoutKindRefund,
		})
	}
	return outcome
}

// appendPayout records a win credit. A payout floored to zero (sub-unit
// multiplier on a tiny stake) writes no ledger entry, so it is dropped here.
func (e *payoutEngine) appendPayout(outcome *Outcome, w *models.Wager, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	outcome.Payouts = append(outcome.Payouts, Payout{
		WagerID:  w.ID,
		MemberID: w.MemberID,
		Amount:   amount,
		Kind:     PayoutKindWin,
	})
}
