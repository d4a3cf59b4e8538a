package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// LegacySecret is the signing secret older deployments fell back to when
// JWT_SECRET was unset. It is only accepted outside production.
const LegacySecret = "defaultSecret"

const envProduction = "production"

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=240h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	// CORSOrigins is an allow-list separated by commas or semicolons.
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:3000;http://localhost:5173"`

	Mongo MongoConfig
	Redis RedisConfig
	S3    S3Config
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio"`
}

// RedisConfig is optional. Without an address visits are not deduplicated.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"`
	DB          int           `env:"REDIS_DB,           default=0"`
	DedupWindow time.Duration `env:"VISIT_DEDUP_WINDOW, default=30m"`
}

// S3Config is optional. Without a bucket image uploads are rejected.
type S3Config struct {
	Bucket        string `env:"S3_BUCKET"`
	Region        string `env:"S3_REGION,          default=us-east-1"`
	Endpoint      string `env:"S3_ENDPOINT"`
	AccessKey     string `env:"S3_ACCESS_KEY"`
	SecretKey     string `env:"S3_SECRET_KEY"`
	UsePathStyle  bool   `env:"S3_USE_PATH_STYLE, default=false"`
	PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrMissingSecret = errors.New("config: JWT_SECRET is required in production")

func (c *Config) validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.Redis.DedupWindow < 0 {
		return fmt.Errorf("config: VISIT_DEDUP_WINDOW must not be negative, got %s", c.Redis.DedupWindow)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// SigningSecret returns the configured secret, or LegacySecret when none is
// set. The second result reports whether the fallback was used.
func (c *Config) SigningSecret() (string, bool) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false
	}
	return LegacySecret, true
}

// AllowedOrigins splits CORSOrigins on commas or semicolons.
func (c *Config) AllowedOrigins() []string {
	fields := strings.FieldsFunc(c.CORSOrigins, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
