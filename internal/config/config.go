package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment (a .env file is autoloaded by cmd/api).
type Config struct {
	Port     int            `env:"PORT" env-default:"8080"`
	SkipsAPI SkipsAPIConfig
	Session  SessionConfig
	DynamoDB DynamoDBConfig
}

type SkipsAPIConfig struct {
	URL string `env:"SKIPS_API_URL" env-default:"https://app.wewantwaste.co.uk/api/skips/by-location"`
	// 0 disables the client timeout; a hung request then stays pending.
	Timeout time.Duration `env:"SKIPS_API_TIMEOUT" env-default:"0s"`
}

type SessionConfig struct {
	DefaultPostcode string        `env:"DEFAULT_POSTCODE" env-default:"NR32"`
	DefaultArea     string        `env:"DEFAULT_AREA" env-default:"Lowestoft"`
	IdleTTL         time.Duration `env:"SESSION_TTL" env-default:"30m"`
	SweepSpec       string        `env:"SESSION_SWEEP_SPEC" env-default:"@every 1m"`
}

// DynamoDBConfig keeps local-friendly defaults: DynamoDB Local does not
// validate credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable     string `env:"QUOTES_TABLE" env-default:"quotes"`
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535")
	}
	if c.SkipsAPI.URL == "" {
		return fmt.Errorf("skips api url is required")
	}
	if c.SkipsAPI.Timeout < 0 {
		return fmt.Errorf("skips api timeout must be >= 0")
	}
	if (c.Session.DefaultPostcode == "") != (c.Session.DefaultArea == "") {
		return fmt.Errorf("default postcode and area must be set together")
	}
	if c.Session.IdleTTL < 0 {
		return fmt.Errorf("session ttl must be >= 0")
	}
	if c.DynamoDB.QuotesTable == "" {
		return fmt.Errorf("quotes table is required")
	}
	return nil
}
