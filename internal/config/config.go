package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultCodeLength  = 6
	defaultMaxAttempts = 50
	base62Alphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrInvalidConfig = errors.New("invalid config")

// CodeConfig параметры генерации коротких кодов
type CodeConfig struct {
	Length   int    `env:"LENGTH"`
	Alphabet string `env:"ALPHABET"`
}

// RetryConfig бюджет попыток аллокации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	SQLiteDSN       string         `env:"SQLITE_DSN"`
	RedisAddress    string         `env:"REDIS_ADDRESS"`
	RedisPassword   string         `env:"REDIS_PASSWORD"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	JWTSecret       string         `env:"JWT_SECRET"`
	LogLevel        string         `env:"LOG_LEVEL"`

	Code  CodeConfig  `envPrefix:"CODE_"`
	Retry RetryConfig `envPrefix:"RETRY_"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		JWTSecret:     "change-me-in-production",
		LogLevel:      "info",
		Code: CodeConfig{
			Length:   defaultCodeLength,
			Alphabet: base62Alphabet,
		},
		Retry: RetryConfig{
			MaxAttempts: defaultMaxAttempts,
		},
	}
}

// Load читает .env (если есть), флаги командной строки и переменные окружения.
// Переменные окружения имеют приоритет над флагами
func Load() (*Config, error) {
	_ = godotenv.Load()

	return LoadFromArgs(os.Args[1:], env.ToMap(os.Environ()))
}

// LoadFromArgs собирает конфигурацию из переданных аргументов и окружения
func LoadFromArgs(args []string, environ map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage journal")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres connection string")
	fs.StringVar(&cfg.SQLiteDSN, "s", cfg.SQLiteDSN, "sqlite file path or libsql URL")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "redis address")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC server")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if environ == nil {
		environ = map[string]string{}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Code.Length <= 0 {
		return fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidConfig, c.Code.Length)
	}
	if c.Code.Alphabet == "" {
		return fmt.Errorf("%w: code alphabet is empty", ErrInvalidConfig)
	}
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("%w: retry max attempts must be positive, got %d", ErrInvalidConfig, c.Retry.MaxAttempts)
	}
	return nil
}
