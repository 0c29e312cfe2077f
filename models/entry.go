package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryType represents the type of ledger entry
type EntryType string

const (
	EntryTypeStake  EntryType = "wager_stake"
	EntryTypePayout EntryType = "payout"
	EntryTypeRefund EntryType = "refund"
	EntryTypeSeed   EntryType = "seed"
)

// Entry is an immutable credit ledger record. Every member balance mutation
// writes exactly one entry in the same transaction; entries are never updated.
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_entries_member" json:"member_id"`
	LeagueID      uuid.UUID       `gorm:"type:uuid;not null" json:"league_id"`
	EntryType     EntryType       `gorm:"type:varchar(20);not null" json:"entry_type"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,0);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:decimal(20,0);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(20,0);not null" json:"balance_after"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid" json:"reference_id"`
	Description   string          `gorm:"type:text" json:"description"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index:idx_entries_created_at" json:"created_at"`

	// Associations (entries are immutable, no updates)
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	League *League `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
}

// TableName specifies the table name for Entry model
func (*Entry) TableName() string {
	return "entries"
}

// BeforeCreate sets up the model before creation
func (e *Entry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsCredit checks if this is a credit entry (positive amount)
func (e *Entry) IsCredit() bool {
	return e.Amount.GreaterThan(decimal.Zero)
}

// IsDebit checks if this is a debit entry (negative amount)
func (e *Entry) IsDebit() bool {
	return e.Amount.LessThan(decimal.Zero)
}

// IsBalanceConsistent checks if the balance calculation is consistent
func (e *Entry) IsBalanceConsistent() bool {
	return e.BalanceBefore.Add(e.Amount).Equal(e.BalanceAfter)
}

// Validate performs validation on the entry model
func (e *Entry) Validate() error {
	if e.MemberID == uuid.Nil {
		return ErrInvalidMemberID
	}
	if e.LeagueID == uuid.Nil {
		return ErrInvalidLeagueID
	}
	if e.Amount.IsZero() || !e.Amount.IsInteger() {
		return ErrInvalidEntryAmount
	}
	if !e.IsBalanceConsistent() {
		return ErrEntryOutOfBalance
	}
	if e.BalanceAfter.LessThan(decimal.Zero) {
		return ErrNegativeCredits
	}
	return nil
}

// NewStakeEntry records the debit for a placed wager.
func NewStakeEntry(member *Member, amount decimal.Decimal, wagerID uuid.UUID) *Entry {
	return &Entry{
		MemberID:      member.ID,
		LeagueID:      member.LeagueID,
		EntryType:     EntryTypeStake,
		Amount:        amount.Neg(),
		BalanceBefore: member.Credits.Add(amount),
		BalanceAfter:  member.Credits,
		ReferenceID:   &wagerID,
		Description:   "Wager stake",
	}
}

// NewPayoutEntry records a settlement credit for a winning wager.
func NewPayoutEntry(member *Member, amount decimal.Decimal, propID uuid.UUID) *Entry {
	return &Entry{
		MemberID:      member.ID,
		LeagueID:      member.LeagueID,
		EntryType:     EntryTypePayout,
		Amount:        amount,
		BalanceBefore: member.Credits.Sub(amount),
		BalanceAfter:  member.Credits,
		ReferenceID:   &propID,
		Description:   "Wager payout",
	}
}

// NewRefundEntry records a stake returned by a canceled prop.
func NewRefundEntry(member *Member, amount decimal.Decimal, propID uuid.UUID) *Entry {
	return &Entry{
		MemberID:      member.ID,
		LeagueID:      member.LeagueID,
		EntryType:     EntryTypeRefund,
		Amount:        amount,
		BalanceBefore: member.Credits.Sub(amount),
		BalanceAfter:  member.Credits,
		ReferenceID:   &propID,
		Description:   "Refund for canceled prop",
	}
}

// NewSeedEntry records the starting credits granted when a member joins.
func NewSeedEntry(member *Member, amount decimal.Decimal) *Entry {
	return &Entry{
		MemberID:      member.ID,
		LeagueID:      member.LeagueID,
		EntryType:     EntryTypeSeed,
		Amount:        amount,
		BalanceBefore: member.Credits.Sub(amount),
		BalanceAfter:  member.Credits,
		Description:   "Starting credits",
	}
}
