package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress       string        `env:"RUN_ADDRESS"`
	DatabaseDSN      string        `env:"DATABASE_URI"`
	MigrationsDir    string        `env:"MIGRATIONS_DIR"`
	JWTSecret        string        `env:"JWT_SECRET"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	NotifyGatewayURL string        `env:"NOTIFY_GATEWAY_URL"`
	PayoutInterval   time.Duration `env:"PAYOUT_INTERVAL"`
	PayoutWorkers    int           `env:"PAYOUT_WORKERS"`
	PayoutBatch      int           `env:"PAYOUT_BATCH"`
}

var (
	ErrDatabaseDSNNotSet = errors.New("database DSN is not set")
	ErrJWTSecretNotSet   = errors.New("jwt secret is not set")
)

func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, ErrDatabaseDSNNotSet
	}
	if conf.JWTSecret == "" {
		return nil, ErrJWTSecretNotSet
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("estate", flag.ContinueOnError)

	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fs.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port")
	fs.StringVar(&flagConfig.NotifyGatewayURL, "n", "", "Email/SMS notification gateway base URL")
	fs.DurationVar(&flagConfig.PayoutInterval, "p", 24*time.Hour, "Payout generation interval") //nolint:mnd
	fs.IntVar(&flagConfig.PayoutWorkers, "w", 5, "Payout generation workers")                  //nolint:mnd
	fs.IntVar(&flagConfig.PayoutBatch, "b", 100, "Payout generation batch size")               //nolint:mnd

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:        defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		RedisAddr:        defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		NotifyGatewayURL: defaultIfBlank(envConfig.NotifyGatewayURL, flagsConfig.NotifyGatewayURL),
		PayoutInterval:   defaultIfBlank(envConfig.PayoutInterval, flagsConfig.PayoutInterval),
		PayoutWorkers:    defaultIfBlank(envConfig.PayoutWorkers, flagsConfig.PayoutWorkers),
		PayoutBatch:      defaultIfBlank(envConfig.PayoutBatch, flagsConfig.PayoutBatch),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
