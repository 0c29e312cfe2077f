package app

import (
	"github.com/propleague/ante/app/database"
	"github.com/propleague/ante/app/league"
	"github.com/propleague/ante/app/settlement"
	"github.com/propleague/ante/app/user"
	"github.com/propleague/ante/internal/nexus"
)

type Config struct {
	DB         database.Config
	User       user.Config
	League     league.Config
	Settlement settlement.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// LoadConfig loads the application configuration from environment variables or
// a config file. Module defaults are seeded first so the environment only has
// to override what differs.
func LoadConfig() (*Config, error) {
	c := &Config{
		User:       *user.GetDefaultConfig(),
		League:     *league.GetDefaultConfig(),
		Settlement: *settlement.GetDefaultConfig(),
	}
	if err := nexus.NewLoader().Load(c); err != nil {
		return nil, err
	}

	if err := c.User.Validate(); err != nil {
		return nil, err
	}
	if err := c.League.Validate(); err != nil {
		return nil, err
	}
	if err := c.Settlement.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
