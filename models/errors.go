package models

import "errors"

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrInvalidUserID    = errors.New("invalid user ID")

	ErrInvalidLeagueName  = errors.New("invalid league name")
	ErrInvalidLeagueMode  = errors.New("invalid league payout mode")
	ErrInvalidLeagueID    = errors.New("invalid league ID")
	ErrInvalidStartingPot = errors.New("invalid starting credits")
	ErrInvalidInviteCode  = errors.New("invalid invite code")
	ErrAlreadyMember      = errors.New("already a member of this league")
	ErrNotLeagueMember    = errors.New("not a member of this league")

	ErrInvalidMemberID     = errors.New("invalid member ID")
	ErrNegativeCredits     = errors.New("credits cannot be negative")
	ErrFractionalCredits   = errors.New("credits must be a whole number")
	ErrInsufficientCredits = errors.New("insufficient credits")

	ErrInvalidPropID      = errors.New("invalid prop ID")
	ErrInvalidPropKind    = errors.New("invalid prop kind")
	ErrInvalidQuestion    = errors.New("invalid prop question")
	ErrInvalidDeadline    = errors.New("betting deadline must be in the future")
	ErrInvalidOddsValue   = errors.New("odds multiplier must be greater than zero")
	ErrPropFinalized      = errors.New("prop is already finalized")
	ErrPropNotLive        = errors.New("prop is not live")
	ErrBettingClosed      = errors.New("betting is closed for this prop")
	ErrMissingWinningSide = errors.New("winning side is required")
	ErrInvalidSide        = errors.New("side is not valid for this prop kind")

	ErrInvalidWagerAmount = errors.New("invalid wager amount")
	ErrWagerBelowMinimum  = errors.New("wager amount is below the prop minimum")
	ErrDuplicateWager     = errors.New("member already has a wager on this prop")

	ErrInvalidEntryAmount = errors.New("invalid ledger entry amount")
	ErrEntryOutOfBalance  = errors.New("ledger entry balances are inconsistent")

	ErrInvalidNotificationKind = errors.New("invalid notification kind")

	// ErrMemberMissing signals an internal consistency failure: a wager exists
	// whose member account cannot be resolved. Settlement must abort, never
	// silently skip the payout.
	ErrMemberMissing = errors.New("member account missing for wager")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrInvalidUUID    = errors.New("invalid UUID")
	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)
