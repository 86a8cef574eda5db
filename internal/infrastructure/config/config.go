package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth      AuthConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	AMQP      AMQPConfig
	Provider  ProviderConfig
	Audit     AuditConfig
	RateLimit RateLimitConfig
}

type AuthConfig struct {
	// JWTSecret signs self-issued tokens. Process-wide and immutable for the
	// process lifetime; rotating it invalidates all outstanding tokens.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,     default=24h"`
	// Strategy picks the authentication flow: "local" (self-issued tokens)
	// or "provider" (delegated to an external identity provider).
	Strategy string `env:"AUTH_STRATEGY, default=local"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AMQPConfig struct {
	// URL empty disables broker publication of audit events.
	URL   string `env:"AMQP_URL"`
	Queue string `env:"AMQP_QUEUE, default=auth.events"`
}

type ProviderConfig struct {
	URL    string `env:"IDENTITY_PROVIDER_URL"`
	APIKey string `env:"IDENTITY_PROVIDER_KEY"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

type RateLimitConfig struct {
	LoginLimit  int           `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
