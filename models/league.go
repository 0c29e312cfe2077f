package models

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayoutMode selects the settlement algorithm applied to every prop in a league.
type PayoutMode string

const (
	// PayoutModePool is pari-mutuel: winners split the losing pool pro-rata.
	PayoutModePool PayoutMode = "POOL"
	// PayoutModeRank is fixed-odds: winners receive stake times a preset multiplier.
	PayoutModeRank PayoutMode = "RANK"
)

// IsValid reports whether the mode is one of the supported payout modes.
func (m PayoutMode) IsValid() bool {
	return m == PayoutModePool || m == PayoutModeRank
}

const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// League is a private group with its own credit economy and payout mode.
type League struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	InviteCode      string          `gorm:"type:varchar(12);not null;unique;index" json:"invite_code"`
	Mode            PayoutMode      `gorm:"type:varchar(10);not null;default:'POOL'" json:"mode"`
	StartingCredits decimal.Decimal `gorm:"type:decimal(20,0);not null;default:1000" json:"starting_credits"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Owner   *User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []Member `gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Props   []Prop   `gorm:"foreignKey:LeagueID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for League model
func (*League) TableName() string {
	return "leagues"
}

// BeforeCreate sets up the model before creation
func (l *League) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.InviteCode == "" {
		code, err := GenerateInviteCode(8)
		if err != nil {
			return err
		}
		l.InviteCode = code
	}
	return nil
}

// IsOwner reports whether the given user administers this league.
func (l *League) IsOwner(userID uuid.UUID) bool {
	return l.OwnerID == userID
}

// Validate performs validation on the league model
func (l *League) Validate() error {
	if l.OwnerID == uuid.Nil {
		return ErrInvalidUserID
	}
	if l.Name == "" {
		return ErrInvalidLeagueName
	}
	if !l.Mode.IsValid() {
		return ErrInvalidLeagueMode
	}
	if l.StartingCredits.LessThanOrEqual(decimal.Zero) || !l.StartingCredits.IsInteger() {
		return ErrInvalidStartingPot
	}
	return nil
}

// GenerateInviteCode returns a random join code of n characters drawn from an
// unambiguous alphabet (no 0/O, 1/I).
func GenerateInviteCode(n int) (string, error) {
	code := make([]byte, n)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[idx.Int64()]
	}
	return string(code), nil
}
