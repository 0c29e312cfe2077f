package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Member is a user's account inside one league. It owns the credit balance and
// is the unit the ledger debits and credits. Balances are whole credits and
// may never go negative.
type Member struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LeagueID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_members_league_user" json:"league_id"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_members_league_user" json:"user_id"`
	Credits  decimal.Decimal `gorm:"type:decimal(20,0);not null;default:0;check:credits >= 0" json:"credits"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	League  *League `gorm:"foreignKey:LeagueID" json:"league,omitempty"`
	User    *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Wagers  []Wager `gorm:"foreignKey:MemberID" json:"-"`
	Entries []Entry `gorm:"foreignKey:MemberID" json:"-"`
}

// TableName specifies the table name for Member model
func (*Member) TableName() string {
	return "members"
}

// BeforeCreate sets up the model before creation
func (m *Member) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// CanDebit checks whether the member holds at least amount credits.
func (m *Member) CanDebit(amount decimal.Decimal) bool {
	return m.Credits.GreaterThanOrEqual(amount)
}

// Debit removes credits from the balance. The balance is untouched on error:
// a debit that would breach zero is rejected entirely.
func (m *Member) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) || !amount.IsInteger() {
		return ErrInvalidEntryAmount
	}
	if !m.CanDebit(amount) {
		return ErrInsufficientCredits
	}
	m.Credits = m.Credits.Sub(amount)
	return nil
}

// Credit adds credits to the balance.
func (m *Member) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) || !amount.IsInteger() {
		return ErrInvalidEntryAmount
	}
	m.Credits = m.Credits.Add(amount)
	return nil
}

// Validate performs validation on the member model
func (m *Member) Validate() error {
	if m.LeagueID == uuid.Nil {
		return ErrInvalidLeagueID
	}
	if m.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if m.Credits.LessThan(decimal.Zero) {
		return ErrNegativeCredits
	}
	if !m.Credits.IsInteger() {
		return ErrFractionalCredits
	}
	return nil
}
