package redis

import "time"

// Config holds the Redis client configuration.
type Config struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Username string `env:"USERNAME" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	PoolSize       int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns   int           `env:"MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConns   int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
}
