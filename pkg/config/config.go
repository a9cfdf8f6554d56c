package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "VERGER"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	StateBackendSQLite = "sqlite"
	StateBackendRedis  = "redis"
	StateBackendMemory = "memory"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	State StateConfig
	Redis RedisConfig
	POS   POSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.State.validate(); err != nil {
		return nil, err
	}
	if cfg.State.Backend == StateBackendRedis && cfg.Redis.URL == "" && cfg.Redis.Address == "" {
		return nil, fmt.Errorf("redis state backend requires VERGER_REDIS_URL or VERGER_REDIS_ADDR")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VERGER_APP_ENV" default:"development"`
	Port         string `envconfig:"VERGER_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"VERGER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VERGER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the gateway client at the remote commerce API.
type APIConfig struct {
	BaseURL string        `envconfig:"VERGER_API_BASE_URL" default:"http://localhost:8000/api"`
	Timeout time.Duration `envconfig:"VERGER_API_TIMEOUT" default:"30s"`
}

// StateConfig selects where cart and session documents are persisted.
type StateConfig struct {
	Backend string `envconfig:"VERGER_STATE_BACKEND" default:"sqlite"`
	Path    string `envconfig:"VERGER_STATE_PATH" default:"verger-state.db"`
}

func (s StateConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case StateBackendSQLite, StateBackendRedis, StateBackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown state backend %q", s.Backend)
	}
}

// Normalized returns the lowercased backend name.
func (s StateConfig) Normalized() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

type RedisConfig struct {
	URL          string        `envconfig:"VERGER_REDIS_URL"`
	Address      string        `envconfig:"VERGER_REDIS_ADDR"`
	Password     string        `envconfig:"VERGER_REDIS_PASSWORD"`
	DB           int           `envconfig:"VERGER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VERGER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VERGER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VERGER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VERGER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VERGER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// POSConfig carries kiosk-only settings.
type POSConfig struct {
	LocationID int    `envconfig:"VERGER_POS_LOCATION_ID" default:"1"`
	RegisterID string `envconfig:"VERGER_POS_REGISTER_ID" default:"register-1"`
}
