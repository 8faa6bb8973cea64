package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	DatabaseURL  string        `envconfig:"DATABASE_URL" required:"true"`
	RedisURL     string        `envconfig:"REDIS_URL" default:""` // empty = in-memory carts
	KafkaBrokers string        `envconfig:"KAFKA_BROKERS" default:""` // empty = no event stream
	ResendAPIKey string        `envconfig:"RESEND_API_KEY" default:""`
	EmailFrom    string        `envconfig:"EMAIL_FROM" default:"Penjulum <orders@resend.dev>"`
	StoreEmail   string        `envconfig:"STORE_EMAIL" default:"orders@penjulum.us"`
	CartTTL      time.Duration `envconfig:"CART_TTL" default:"720h"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
