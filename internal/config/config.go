package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/bagdasarian/octofit-tracker/internal/domain"
)

type Config struct {
	Database    DatabaseConfig
	HTTP        HTTPConfig
	Log         LogConfig
	Leaderboard LeaderboardConfig

	// BaseURL задается явно, иначе вычисляется из CODESPACE_NAME
	BaseURL       string `env:"BASE_URL"`
	CodespaceName string `env:"CODESPACE_NAME"`

	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"octofit"`
	Password string `env:"DB_PASSWORD" envDefault:"octofit"`
	DBName   string `env:"DB_NAME" envDefault:"octofit_db"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type HTTPConfig struct {
	Addr               string        `env:"HTTP_ADDR" envDefault:":8000"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type LeaderboardConfig struct {
	Metric domain.ScoreMetric `env:"LEADERBOARD_METRIC" envDefault:"duration"`
	// Schedule - cron-выражение для периодического пересчета, пустое значение отключает его
	Schedule string `env:"LEADERBOARD_SCHEDULE"`
}

// DSN собирает строку подключения в формате key=value
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// APIBaseURL возвращает адрес, под которым API виден клиентам
func (c *Config) APIBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.CodespaceName != "" {
		return fmt.Sprintf("https://%s-8000.app.github.dev", c.CodespaceName)
	}
	return "http://localhost:8000"
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !cfg.Leaderboard.Metric.Valid() {
		return nil, fmt.Errorf("unsupported LEADERBOARD_METRIC %q", cfg.Leaderboard.Metric)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
