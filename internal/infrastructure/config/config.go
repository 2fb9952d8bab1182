package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// DefaultSQLiteURL keeps the database under ./data with WAL journaling,
// enforced foreign keys and a generous lock wait.
const DefaultSQLiteURL = "file:data/app.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(30000)"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	AppName  string `env:"APP_NAME,  default=studio-manager"`
	Debug    bool   `env:"DEBUG,     default=false"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Telemetry TelemetryConfig
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET, required"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL, default=1h"`
	BcryptCost     int           `env:"BCRYPT_COST,          default=12"`
}

type DatabaseConfig struct {
	Driver        string `env:"DB_DRIVER,         default=sqlite"`
	URL           string `env:"DB_URL"`
	MaxOpenConns  int    `env:"DB_MAX_OPEN_CONNS, default=10"`
	AutoProvision bool   `env:"DB_AUTO_PROVISION, default=true"`
}

// RedisConfig is optional: an empty Addr disables Redis.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// TelemetryConfig is optional: an empty endpoint disables tracing.
type TelemetryConfig struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE, default=true"`
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Env) {
	case "development", "dev", "local":
		return true
	}
	return false
}

// Load reads optional dotenv files (".env" when none are given) and then the
// process environment.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case "sqlite", "sqlite3":
		if cfg.Database.URL == "" {
			cfg.Database.URL = DefaultSQLiteURL
		}
	case "postgres", "postgresql", "pgx":
		if cfg.Database.URL == "" {
			return nil, errors.New("config: DB_URL is required for postgres")
		}
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	if cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("config: JWT_ACCESS_TOKEN_TTL must be positive")
	}
	return &cfg, nil
}
