package config

import (
	"fmt"

	"boxscore/internal/domain"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath       string `env:"DB_PATH" envDefault:"boxscore.db"`
	ServerPort   string `env:"SERVER_PORT" envDefault:"5000"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	NBAFeedURL   string `env:"NBA_FEED_URL" envDefault:"https://chumley.barstoolsports.com/dev/data/games/6c974274-4bfc-4af8-a9c4-8b926637ba74.json"`
	MLBFeedURL   string `env:"MLB_FEED_URL" envDefault:"https://chumley.barstoolsports.com/dev/data/games/eed38457-db28-4658-ae4f-4d4d38e9e212.json"`
	RedisURL     string `env:"REDIS_URL"`
	PrimeOnStart bool   `env:"PRIME_ON_START" envDefault:"true"`
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("redis_enabled", cfg.RedisURL != "").
		Bool("prime_on_start", cfg.PrimeOnStart).
		Msg("configuration loaded")

	return &cfg, nil
}

// Validate requires a feed URL for every known sport.
func (c *Config) Validate() error {
	urls := c.FeedURLs()
	for _, sport := range domain.KnownSports() {
		if urls[sport] == "" {
			return fmt.Errorf("feed URL for %s is required", sport)
		}
	}
	return nil
}

// FeedURLs maps each sport to its fixed upstream resource.
func (c *Config) FeedURLs() map[domain.Sport]string {
	return map[domain.Sport]string{
		domain.SportNBA: c.NBAFeedURL,
		domain.SportMLB: c.MLBFeedURL,
	}
}

var Module = fx.Provide(Load)
