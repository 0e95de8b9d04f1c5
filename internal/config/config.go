// Package config handles application configuration via environment variables.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds all configurable values for the server.
type Config struct {
	Env           string `env:"ENV,default=development"`
	Port          string `env:"PORT,default=8080"`
	DBPath        string `env:"DB_PATH,default=data/bloom.db"`
	Timezone      string `env:"TZ,default=UTC"`
	AuthSecret    string `env:"AUTH_SECRET,default=change_me_in_production"`
	WebhookSecret string `env:"WEBHOOK_SECRET,default="`
	CORSOrigin    string `env:"CORS_ORIGIN,default=*"`
}

// Load populates a Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
