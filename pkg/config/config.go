package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
	"github.com/yujm08/MSAProjects-ezen/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig         `envPrefix:"APP_"`
	Postgres   postgresql.Config `envPrefix:"POSTGRES_"`
	Redis      redis.Config      `envPrefix:"REDIS_"`
	KIS        KISConfig         `envPrefix:"KIS_"`
	TwelveData TwelveDataConfig  `envPrefix:"TWELVEDATA_"`
	Collector  CollectorConfig   `envPrefix:"COLLECTOR_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"data-collector-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// KISConfig holds the Korea Investment & Securities endpoints and credentials.
type KISConfig struct {
	RESTURL       string `env:"REST_URL" envDefault:"https://openapi.koreainvestment.com:9443"`
	WSURLDomestic string `env:"WS_URL_DOMESTIC" envDefault:"ws://ops.koreainvestment.com:21000"`
	AppKey        string `env:"APP_KEY"`
	AppSecret     string `env:"APP_SECRET"`

	// Credential lifetimes. The approval key lives 24h and is renewed 4h
	// early; the access token is simply re-issued every 5h.
	ApprovalKeyExpiry time.Duration `env:"APPROVAL_KEY_EXPIRY" envDefault:"24h"`
	ApprovalKeyMargin time.Duration `env:"APPROVAL_KEY_MARGIN" envDefault:"4h"`
	AccessTokenExpiry time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"5h"`
	IssueCooldown     time.Duration `env:"ISSUE_COOLDOWN" envDefault:"60s"`
}

// TwelveDataConfig holds the forex data provider endpoints and credentials.
type TwelveDataConfig struct {
	RESTURL string `env:"REST_URL" envDefault:"https://api.twelvedata.com"`
	WSURL   string `env:"WS_URL" envDefault:"wss://ws.twelvedata.com/v1/quotes/price"`
	APIKey  string `env:"API_KEY"`
}

// CollectorConfig holds the collection cadence knobs.
type CollectorConfig struct {
	FlushInterval     time.Duration `env:"FLUSH_INTERVAL" envDefault:"20s"`
	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"20s"`
	PollThrottle      time.Duration `env:"POLL_THROTTLE" envDefault:"500ms"`
	ForexSaveInterval time.Duration `env:"FOREX_SAVE_INTERVAL" envDefault:"4m"`

	RolloverHour   int `env:"ROLLOVER_HOUR" envDefault:"7"`
	RolloverMinute int `env:"ROLLOVER_MINUTE" envDefault:"0"`
	PruneHour      int `env:"PRUNE_HOUR" envDefault:"7"`
	PruneMinute    int `env:"PRUNE_MINUTE" envDefault:"10"`

	RetentionMonths int `env:"RETENTION_MONTHS" envDefault:"3"`

	LatestCacheTTL time.Duration `env:"LATEST_CACHE_TTL" envDefault:"10m"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
