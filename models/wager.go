package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wager is one member's stake on one side of a prop. Wagers are immutable
// after insert; settlement reads them, it never rewrites them.
type Wager struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PropID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_wagers_prop_member" json:"prop_id"`
	MemberID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_wagers_prop_member" json:"member_id"`
	Amount   decimal.Decimal `gorm:"type:decimal(20,0);not null" json:"amount"`
	Side     string          `gorm:"type:varchar(10);not null" json:"side"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Prop   *Prop   `gorm:"foreignKey:PropID" json:"prop,omitempty"`
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// TableName specifies the table name for Wager model
func (*Wager) TableName() string {
	return "wagers"
}

// BeforeCreate sets up the model before creation
func (w *Wager) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the wager model
func (w *Wager) Validate() error {
	if w.PropID == uuid.Nil {
		return ErrInvalidPropID
	}
	if w.MemberID == uuid.Nil {
		return ErrInvalidMemberID
	}
	if w.Amount.LessThanOrEqual(decimal.Zero) || !w.Amount.IsInteger() {
		return ErrInvalidWagerAmount
	}
	if w.Side == "" {
		return ErrInvalidSide
	}
	return nil
}

// WagerPool is the set of wagers on a single prop.
type WagerPool []Wager

// PartitionBySide splits the pool into wagers on the winning side and the rest.
func (p WagerPool) PartitionBySide(winningSide string) (winners, losers WagerPool) {
	for _, w := range p {
		if w.Side == winningSide {
			winners = append(winners, w)
		} else {
			losers = append(losers, w)
		}
	}
	return winners, losers
}

// TotalStaked sums the amounts in the pool, optionally restricted to one side.
func (p WagerPool) TotalStaked(side ...string) decimal.Decimal {
	total := decimal.Zero
	for _, w := range p {
		if len(side) > 0 && w.Side != side[0] {
			continue
		}
		total = total.Add(w.Amount)
	}
	return total
}

// HasWager reports whether the member already holds a wager in this pool.
func (p WagerPool) HasWager(memberID uuid.UUID) bool {
	for _, w := range p {
		if w.MemberID == memberID {
			return true
		}
	}
	return false
}

// MemberIDs returns the distinct member ids present in the pool.
func (p WagerPool) MemberIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(p))
	ids := make([]uuid.UUID, 0, len(p))
	for _, w := range p {
		if _, ok := seen[w.MemberID]; ok {
			continue
		}
		seen[w.MemberID] = struct{}{}
		ids = append(ids, w.MemberID)
	}
	return ids
}
