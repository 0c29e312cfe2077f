package league

import (
	"errors"
	"time"
)

// Config represents the configuration for the league module
type Config struct {
	// LeaderboardCacheTTL bounds how stale a cached leaderboard may get;
	// settlements do not invalidate it directly.
	LeaderboardCacheTTL time.Duration `env:"LEAGUE_LEADERBOARD_CACHE_TTL"`
}

func (c *Config) Validate() error {
	if c.LeaderboardCacheTTL <= 0 {
		return errors.New("leaderboard cache TTL must be positive")
	}
	return nil
}

// GetDefaultConfig returns the default league configuration
func GetDefaultConfig() *Config {
	return &Config{
		LeaderboardCacheTTL: 30 * time.Second,
	}
}
