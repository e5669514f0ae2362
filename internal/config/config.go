package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress = "localhost:3333"
	defaultSessionTTL = 24 * time.Hour
)

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL"`
}

// LoadConfig собирает конфиг из переменных окружения и флагов командной строки. Переменные окружения
// важнее флагов. Если рядом лежит .env, он загружается до разбора окружения.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	// .env не обязателен.
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.SessionSecret == "" {
		return nil, errors.New("session secret is not set")
	}
	if conf.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", conf.SessionTTL)
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("finapi", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", defaultRunAddress, "Run address in format host:port")
	fs.StringVar(&flagConfig.SessionSecret, "s", "", "Secret key for session tokens")
	fs.DurationVar(&flagConfig.SessionTTL, "t", defaultSessionTTL, "Session token lifetime")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	ttl := envConfig.SessionTTL
	if ttl == 0 {
		ttl = flagsConfig.SessionTTL
	}
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		SessionSecret: defaultIfBlank(envConfig.SessionSecret, flagsConfig.SessionSecret),
		SessionTTL:    ttl,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
