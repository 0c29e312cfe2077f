package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PropKind determines the vocabulary of sides a wager may take.
type PropKind string

const (
	// PropKindBinary is a yes/no question.
	PropKindBinary PropKind = "BINARY"
	// PropKindThreshold is an over/under question about a numeric line.
	PropKindThreshold PropKind = "THRESHOLD"
)

// IsValid reports whether the kind is supported.
func (k PropKind) IsValid() bool {
	return k == PropKindBinary || k == PropKindThreshold
}

// Sides returns the side vocabulary for the kind.
func (k PropKind) Sides() []string {
	switch k {
	case PropKindBinary:
		return []string{SideYes, SideNo}
	case PropKindThreshold:
		return []string{SideOver, SideUnder}
	default:
		return nil
	}
}

// Wager sides, per prop kind.
const (
	SideYes   = "yes"
	SideNo    = "no"
	SideOver  = "over"
	SideUnder = "under"
)

// PropStatus is the persisted lifecycle state of a prop.
type PropStatus string

const (
	PropStatusLive     PropStatus = "LIVE"
	PropStatusResolved PropStatus = "RESOLVED"
	PropStatusCanceled PropStatus = "CANCELED"
)

// Prop is a proposition members wager on. Only LIVE and the two terminal
// states are stored; "locked" (deadline passed, not yet settled) is derived
// at read time so there is no sweeper to keep a fourth state consistent.
type Prop struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeagueID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"league_id"`
	CreatorMemberID uuid.UUID        `gorm:"type:uuid;not null" json:"creator_member_id"`
	TargetMemberID  *uuid.UUID       `gorm:"type:uuid" json:"target_member_id,omitempty"`
	Question        string           `gorm:"type:text;not null" json:"question"`
	Kind            PropKind         `gorm:"type:varchar(20);not null" json:"kind"`
	WagerAmount     decimal.Decimal  `gorm:"type:decimal(20,0);not null" json:"wager_amount"`
	OddsMultiplier  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"odds_multiplier,omitempty"`
	BettingDeadline time.Time        `gorm:"not null" json:"betting_deadline"`
	Status          PropStatus       `gorm:"type:varchar(20);not null;default:'LIVE';index" json:"status"`
	WinningSide     *string          `gorm:"type:varchar(10)" json:"winning_side,omitempty"`
	ResolvedAt      *time.Time       `json:"resolved_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	League  *League `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	Creator *Member `gorm:"foreignKey:CreatorMemberID" json:"creator,omitempty"`
	Target  *Member `gorm:"foreignKey:TargetMemberID" json:"target,omitempty"`
	Wagers  []Wager `gorm:"foreignKey:PropID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Prop model
func (*Prop) TableName() string {
	return "props"
}

// BeforeCreate sets up the model before creation
func (p *Prop) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PropStatusLive
	}
	return nil
}

// IsLive reports whether the prop is still open to settlement.
func (p *Prop) IsLive() bool {
	return p.Status == PropStatusLive
}

// IsFinal reports whether the prop has reached a terminal state.
func (p *Prop) IsFinal() bool {
	return p.Status == PropStatusResolved || p.Status == PropStatusCanceled
}

// IsLocked reports whether the betting window has closed on a prop that has
// not yet been settled. Locked is derived, never stored.
func (p *Prop) IsLocked(now time.Time) bool {
	return p.IsLive() && !now.Before(p.BettingDeadline)
}

// AcceptsWagers reports whether a wager may still be placed: the prop is live
// and the deadline has not passed.
func (p *Prop) AcceptsWagers(now time.Time) bool {
	return p.IsLive() && now.Before(p.BettingDeadline)
}

// SideValid reports whether side belongs to this prop's vocabulary.
func (p *Prop) SideValid(side string) bool {
	for _, s := range p.Kind.Sides() {
		if s == side {
			return true
		}
	}
	return false
}

// Resolve transitions a live prop to RESOLVED with the given winning side.
// A terminal prop is never re-resolved.
func (p *Prop) Resolve(side string, now time.Time) error {
	if p.IsFinal() {
		return ErrPropFinalized
	}
	if !p.IsLive() {
		return ErrPropNotLive
	}
	if side == "" {
		return ErrMissingWinningSide
	}
	if !p.SideValid(side) {
		return ErrInvalidSide
	}
	p.Status = PropStatusResolved
	p.WinningSide = &side
	p.ResolvedAt = &now
	return nil
}

// Cancel transitions a non-terminal prop to CANCELED.
func (p *Prop) Cancel(now time.Time) error {
	if p.IsFinal() {
		return ErrPropFinalized
	}
	p.Status = PropStatusCanceled
	p.ResolvedAt = &now
	return nil
}

// MinimumWager returns the smallest stake the prop accepts under the league's
// payout mode. POOL props take a fixed stake; RANK props treat WagerAmount as
// a floor and let the bettor choose.
func (p *Prop) MinimumWager() decimal.Decimal {
	return p.WagerAmount
}

// Multiplier returns the fixed-odds multiplier, falling back to def when the
// creator did not set one.
func (p *Prop) Multiplier(def decimal.Decimal) decimal.Decimal {
	if p.OddsMultiplier != nil && p.OddsMultiplier.GreaterThan(decimal.Zero) {
		return *p.OddsMultiplier
	}
	return def
}

// Validate performs validation on the prop model
func (p *Prop) Validate() error {
	if p.LeagueID == uuid.Nil {
		return ErrInvalidLeagueID
	}
	if p.CreatorMemberID == uuid.Nil {
		return ErrInvalidMemberID
	}
	if p.Question == "" {
		return ErrInvalidQuestion
	}
	if !p.Kind.IsValid() {
		return ErrInvalidPropKind
	}
	if p.WagerAmount.LessThanOrEqual(decimal.Zero) || !p.WagerAmount.IsInteger() {
		return ErrInvalidWagerAmount
	}
	if p.OddsMultiplier != nil && p.OddsMultiplier.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidOddsValue
	}
	if p.Status == PropStatusResolved && p.WinningSide == nil {
		return ErrMissingWinningSide
	}
	if p.Status != PropStatusResolved && p.WinningSide != nil {
		return ErrPropNotLive
	}
	return nil
}
