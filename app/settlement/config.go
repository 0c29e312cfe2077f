package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/propleague/ante/models"
)

// Config represents the configuration for the settlement module
type Config struct {
	// DefaultOddsMultiplier applies to RANK-mode props whose creator did not
	// set odds of their own.
	DefaultOddsMultiplier decimal.Decimal `env:"SETTLEMENT_DEFAULT_ODDS_MULTIPLIER"`
}

func (c *Config) Validate() error {
	if c.DefaultOddsMultiplier.LessThanOrEqual(decimal.Zero) {
		return models.ErrInvalidOddsValue
	}
	return nil
}

// GetDefaultConfig returns the default settlement configuration
func GetDefaultConfig() *Config {
	return &Config{
		DefaultOddsMultiplier: decimal.NewFromInt(2),
	}
}
