package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is a comma-separated allowlist; "*" allows any origin.
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	// FieldKey is the base64-encoded 32-byte key for at-rest field
	// encryption of sensitive medical columns.
	FieldKey string `env:"FIELD_KEY"`

	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL, default=60s"`

	Supabase SupabaseConfig
	Redis    RedisConfig
}

type SupabaseConfig struct {
	URL        string `env:"SUPABASE_URL"`
	AnonKey    string `env:"SUPABASE_ANON_KEY"`
	ServiceKey string `env:"SUPABASE_SERVICE_KEY"`
}

// RedisConfig is optional: an empty Addr disables the session cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// DecodeFieldKey decodes and length-checks the field encryption key.
func (c *Config) DecodeFieldKey() ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(c.FieldKey)
	if err != nil {
		return nil, fmt.Errorf("config: FIELD_KEY is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("config: FIELD_KEY must decode to 32 bytes, got %d", len(key))
	}
	return key, nil
}
