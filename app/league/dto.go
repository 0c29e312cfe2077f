package league

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/internal/validator"
	"github.com/propleague/ante/models"
)

// CreateLeagueRequest starts a new league. Mode defaults to POOL and
// StartingCredits to the model default when omitted.
type CreateLeagueRequest struct {
	Name            string            `json:"name" binding:"required"`
	Description     string            `json:"description"`
	Mode            models.PayoutMode `json:"mode"`
	StartingCredits decimal.Decimal   `json:"starting_credits"`
}

// Validate checks the request fields that gin bindings cannot express.
func (r *CreateLeagueRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Name), "name", "must not be blank")
	v.Check(validator.MaxRunes(r.Name, 100), "name", "must be at most 100 characters")
	if r.Mode != "" {
		v.Check(r.Mode.IsValid(), "mode", "must be POOL or RANK")
	}
	if !r.StartingCredits.IsZero() {
		v.Check(r.StartingCredits.GreaterThan(decimal.Zero) && r.StartingCredits.IsInteger(),
			"starting_credits", "must be a positive whole number")
	}
	return v.Valid()
}

// JoinLeagueRequest joins a league by its invite code.
type JoinLeagueRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// LeagueResponse is the read model for a league.
type LeagueResponse struct {
	ID              uuid.UUID         `json:"id"`
	OwnerID         uuid.UUID         `json:"owner_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	InviteCode      string            `json:"invite_code"`
	Mode            models.PayoutMode `json:"mode"`
	StartingCredits decimal.Decimal   `json:"starting_credits"`
	CreatedAt       time.Time         `json:"created_at"`
}

// MemberResponse is one member's account inside a league.
type MemberResponse struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name,omitempty"`
	Credits  decimal.Decimal `json:"credits"`
	JoinedAt time.Time       `json:"joined_at"`
}

// LeaderboardRow is one standing in the league leaderboard.
type LeaderboardRow struct {
	Rank     int             `json:"rank"`
	MemberID uuid.UUID       `json:"member_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Name     string          `json:"name,omitempty"`
	Credits  decimal.Decimal `json:"credits"`
}

// EntryResponse is one immutable ledger record in a member's credit history.
type EntryResponse struct {
	ID            uuid.UUID        `json:"id"`
	EntryType     models.EntryType `json:"entry_type"`
	Amount        decimal.Decimal  `json:"amount"`
	BalanceBefore decimal.Decimal  `json:"balance_before"`
	BalanceAfter  decimal.Decimal  `json:"balance_after"`
	ReferenceID   *uuid.UUID       `json:"reference_id,omitempty"`
	Description   string           `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toEntryResponse(e *models.Entry) EntryResponse {
	return EntryResponse{
		ID:            e.ID,
		EntryType:     e.EntryType,
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		ReferenceID:   e.ReferenceID,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
	}
}

func toLeagueResponse(l *models.League) *LeagueResponse {
	return &LeagueResponse{
		ID:              l.ID,
		OwnerID:         l.OwnerID,
		Name:            l.Name,
		Description:     l.Description,
		InviteCode:      l.InviteCode,
		Mode:            l.Mode,
		StartingCredits: l.StartingCredits,
		CreatedAt:       l.CreatedAt,
	}
}

func toMemberResponse(m *models.Member) MemberResponse {
	resp := MemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Credits:  m.Credits,
		JoinedAt: m.CreatedAt,
	}
	if m.User != nil {
		resp.Name = m.User.Name
	}
	return resp
}

func toLeaderboard(members []models.Member) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(members))
	for i := range members {
		row := LeaderboardRow{
			Rank:     i + 1,
			MemberID: members[i].ID,
			UserID:   members[i].UserID,
			Credits:  members[i].Credits,
		}
		if members[i].User != nil {
			row.Name = members[i].User.Name
		}
		rows = append(rows, row)
	}
	return rows
}
