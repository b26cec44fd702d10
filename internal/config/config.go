package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	// Remote game service.
	GameAPIBaseURL string        `envconfig:"GAME_API_BASE_URL" default:"https://dragonsofmugloar.com/api/v2"`
	GameAPITimeout time.Duration `envconfig:"GAME_API_TIMEOUT" default:"20s"`

	// Turn loop tuning.
	TargetScore int           `envconfig:"TARGET_SCORE" default:"30000"`
	MaxTurns    int           `envconfig:"MAX_TURNS" default:"400"`
	TurnDelay   time.Duration `envconfig:"TURN_DELAY" default:"500ms"`

	// Session registry.
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"1h"`

	// Optional run-history database; empty keeps everything in memory.
	DBDSN         string `envconfig:"DB_DSN"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
