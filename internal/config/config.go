package config

import (
	"fmt"
	"log/slog"
	"time"

	"event-portal/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Storage   StorageConfig   `yaml:"storage"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Mock      MockConfig      `yaml:"mock"`
	Admin     AdminConfig     `yaml:"admin"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tabs      TabsConfig      `yaml:"tabs"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"required,oneof=json text"`
}

// LogLevel converts the configured level name into a slog level.
func (c LoggerConfig) LogLevel() slog.Level {
	return logger.ParseLevel(c.Level)
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"    validate:"required,oneof=sqlite memory"`
	DSN    string `yaml:"dsn"    env:"STORAGE_DSN"    env-default:"portal.db" validate:"required_if=Driver sqlite"`
	// AuditLog receives one INSERT statement per registration when set.
	AuditLog string `yaml:"audit_log" env:"STORAGE_AUDIT_LOG"`
}

type CatalogConfig struct {
	// File overrides the built-in catalog when set.
	File string `yaml:"file" env:"CATALOG_FILE"`
}

type MockConfig struct {
	Latency        time.Duration `yaml:"latency"          env:"MOCK_LATENCY"          env-default:"300ms" validate:"gte=0"`
	LegacyNotFound bool          `yaml:"legacy_not_found" env:"MOCK_LEGACY_NOT_FOUND"`
}

type AdminConfig struct {
	Mode         string `yaml:"mode"          env:"ADMIN_MODE"          env-default:"open"  validate:"required,oneof=open credentials"`
	Username     string `yaml:"username"      env:"ADMIN_USERNAME"      env-default:"admin" validate:"required_if=Mode credentials"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"                     validate:"required_if=Mode credentials"`
}

type SessionConfig struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" validate:"required,min=32"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests" env:"RATE_LIMIT_REQUESTS" env-default:"120" validate:"gte=0"`
	Window   time.Duration `yaml:"window"   env:"RATE_LIMIT_WINDOW"   env-default:"1m"  validate:"gt=0"`
}

type TabsConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl"       env:"TABS_IDLE_TTL"       env-default:"30m" validate:"gt=0"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"TABS_SWEEP_INTERVAL" env-default:"1m"  validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"`
}

// Load reads path with environment overrides, or only the environment when
// path is empty, then validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
