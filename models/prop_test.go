package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func liveProp(deadline time.Time) Prop {
	return Prop{
		LeagueID:        uuid.New(),
		CreatorMemberID: uuid.New(),
		Question:        "Will it rain tomorrow?",
		Kind:            PropKindBinary,
		WagerAmount:     decimal.NewFromInt(50),
		BettingDeadline: deadline,
		Status:          PropStatusLive,
	}
}

func TestPropKind(t *testing.T) {
	assert.True(t, PropKindBinary.IsValid())
	assert.True(t, PropKindThreshold.IsValid())
	assert.False(t, PropKind("PARLAY").IsValid())

	assert.Equal(t, []string{SideYes, SideNo}, PropKindBinary.Sides())
	assert.Equal(t, []string{SideOver, SideUnder}, PropKindThreshold.Sides())
	assert.Nil(t, PropKind("PARLAY").Sides())
}

func TestProp(t *testing.T) {
	now := time.Now()

	t.Run("TableName", func(t *testing.T) {
		p := Prop{}
		assert.Equal(t, "props", p.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		p := Prop{}
		err := p.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, PropStatusLive, p.Status)
	})

	t.Run("StatusPredicates", func(t *testing.T) {
		p := liveProp(now.Add(time.Hour))
		assert.True(t, p.IsLive())
		assert.False(t, p.IsFinal())
		assert.False(t, p.IsLocked(now))
		assert.True(t, p.AcceptsWagers(now))

		// deadline passed: locked but still live
		locked := liveProp(now.Add(-time.Minute))
		assert.True(t, locked.IsLive())
		assert.True(t, locked.IsLocked(now))
		assert.False(t, locked.AcceptsWagers(now))

		resolved := liveProp(now.Add(time.Hour))
		resolved.Status = PropStatusResolved
		assert.True(t, resolved.IsFinal())
		assert.False(t, resolved.IsLocked(now))
	})

	t.Run("AcceptsWagers at exact deadline", func(t *testing.T) {
		p := liveProp(now)
		assert.False(t, p.AcceptsWagers(now))
		assert.True(t, p.IsLocked(now))
	})

	t.Run("SideValid", func(t *testing.T) {
		binary := liveProp(now.Add(time.Hour))
		assert.True(t, binary.SideValid(SideYes))
		assert.True(t, binary.SideValid(SideNo))
		assert.False(t, binary.SideValid(SideOver))
		assert.False(t, binary.SideValid(""))

		threshold := liveProp(now.Add(time.Hour))
		threshold.Kind = PropKindThreshold
		assert.True(t, threshold.SideValid(SideOver))
		assert.True(t, threshold.SideValid(SideUnder))
		assert.False(t, threshold.SideValid(SideYes))
	})

	t.Run("Resolve", func(t *testing.T) {
		p := liveProp(now.Add(time.Hour))
		err := p.Resolve(SideYes, now)
		assert.NoError(t, err)
		assert.Equal(t, PropStatusResolved, p.Status)
		assert.NotNil(t, p.WinningSide)
		assert.Equal(t, SideYes, *p.WinningSide)
		assert.NotNil(t, p.ResolvedAt)

		// second resolve on terminal prop
		err = p.Resolve(SideNo, now)
		assert.Equal(t, ErrPropFinalized, err)
		assert.Equal(t, SideYes, *p.WinningSide)
	})

	t.Run("Resolve before deadline is allowed", func(t *testing.T) {
		p := liveProp(now.Add(24 * time.Hour))
		assert.NoError(t, p.Resolve(SideNo, now))
	})

	t.Run("Resolve invalid side", func(t *testing.T) {
		p := liveProp(now.Add(time.Hour))
		assert.Equal(t, ErrMissingWinningSide, p.Resolve("", now))
		assert.Equal(t, ErrInvalidSide, p.Resolve("maybe", now))
		assert.Equal(t, ErrInvalidSide, p.Resolve(SideOver, now))
		assert.True(t, p.IsLive())
	})

	t.Run("Cancel", func(t *testing.T) {
		p := liveProp(now.Add(time.Hour))
		err := p.Cancel(now)
		assert.NoError(t, err)
		assert.Equal(t, PropStatusCanceled, p.Status)
		assert.Nil(t, p.WinningSide)

		err = p.Cancel(now)
		assert.Equal(t, ErrPropFinalized, err)
	})

	t.Run("Cancel locked prop", func(t *testing.T) {
		p := liveProp(now.Add(-time.Hour))
		assert.True(t, p.IsLocked(now))
		assert.NoError(t, p.Cancel(now))
	})

	t.Run("Multiplier", func(t *testing.T) {
		def := decimal.NewFromInt(2)

		p := liveProp(now.Add(time.Hour))
		assert.True(t, def.Equal(p.Multiplier(def)))

		odds := decimal.NewFromFloat(3.5)
		p.OddsMultiplier = &odds
		assert.True(t, odds.Equal(p.Multiplier(def)))

		bad := decimal.Zero
		p.OddsMultiplier = &bad
		assert.True(t, def.Equal(p.Multiplier(def)))
	})

	t.Run("Validate", func(t *testing.T) {
		valid := liveProp(now.Add(time.Hour))
		assert.NoError(t, valid.Validate())

		side := SideYes
		negOdds := decimal.NewFromInt(-1)

		tests := []struct {
			name   string
			modify func(*Prop)
			err    error
		}{
			{"Missing League", func(p *Prop) { p.LeagueID = uuid.Nil }, ErrInvalidLeagueID},
			{"Missing Creator", func(p *Prop) { p.CreatorMemberID = uuid.Nil }, ErrInvalidMemberID},
			{"Empty Question", func(p *Prop) { p.Question = "" }, ErrInvalidQuestion},
			{"Bad Kind", func(p *Prop) { p.Kind = "PARLAY" }, ErrInvalidPropKind},
			{"Zero Wager", func(p *Prop) { p.WagerAmount = decimal.Zero }, ErrInvalidWagerAmount},
			{"Fractional Wager", func(p *Prop) { p.WagerAmount = decimal.NewFromFloat(0.5) }, ErrInvalidWagerAmount},
			{"Negative Odds", func(p *Prop) { p.OddsMultiplier = &negOdds }, ErrInvalidOddsValue},
			{"Resolved without side", func(p *Prop) { p.Status = PropStatusResolved }, ErrMissingWinningSide},
			{"Live with side", func(p *Prop) { p.WinningSide = &side }, ErrPropNotLive},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				prop := valid
				tt.modify(&prop)
				assert.Equal(t, tt.err, prop.Validate())
			})
		}
	})
}
