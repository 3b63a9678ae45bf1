package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "SCHEDULER_"

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	App       AppConfig       `toml:"app"`
	Slots     SlotsConfig     `toml:"slots"`
	Seed      SeedConfig      `toml:"seed"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AppConfig прикладные настройки
type AppConfig struct {
	AdminUserID int64  `toml:"admin_user_id"`
	Timezone    string `toml:"timezone"`
}

// Location возвращает часовой пояс, в котором интерпретируются даты и время слотов
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SlotsConfig дневное окно генерации слотов
type SlotsConfig struct {
	DayStart string `toml:"day_start"`
	DayEnd   string `toml:"day_end"`
}

// Window возвращает окно как domain.DayWindow
func (c SlotsConfig) Window() domain.DayWindow {
	return domain.DayWindow{Start: types.TimeString(c.DayStart), End: types.TimeString(c.DayEnd)}
}

// SeedConfig начальное заполнение БД при старте
type SeedConfig struct {
	Enabled  bool   `toml:"enabled"`
	Username string `toml:"username"`
	Email    string `toml:"email"`
}

// RateLimitConfig ограничение частоты изменяющих запросов по IP
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "scheduler",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "scheduler-service",
		},
		App: AppConfig{
			AdminUserID: domain.DefaultAdminUserID,
			Timezone:    "UTC",
		},
		Slots: SlotsConfig{
			DayStart: domain.DefaultDayStart,
			DayEnd:   domain.DefaultDayEnd,
		},
		Seed: SeedConfig{
			Enabled:  true,
			Username: "kavya",
			Email:    "admin@cal.com",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     5,
			Burst:   10,
		},
	}
}

// Load загружает конфигурацию
// Порядок: значения по умолчанию -> config.toml (если есть) -> .env -> переменные окружения SCHEDULER_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	stringVars := map[string]*string{
		"DB_HOST":     &cfg.Database.Host,
		"DB_USER":     &cfg.Database.User,
		"DB_PASSWORD": &cfg.Database.Password,
		"DB_NAME":     &cfg.Database.DBName,
		"DB_SSLMODE":  &cfg.Database.SSLMode,
		"LOG_LEVEL":   &cfg.Logs.Level,
		"LOG_FILE":    &cfg.Logs.File,
		"TIMEZONE":    &cfg.App.Timezone,
	}
	for key, target := range stringVars {
		if value, ok := os.LookupEnv(EnvPrefix + key); ok {
			*target = value
		}
	}

	intVars := map[string]*int{
		"HTTP_PORT": &cfg.Server.HTTPPort,
		"DB_PORT":   &cfg.Database.Port,
	}
	for key, target := range intVars {
		value, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, key, value)
		}
		*target = parsed
	}

	if value, ok := os.LookupEnv(EnvPrefix + "METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %sMETRICS_ENABLED=%q is not a boolean", ErrInvalidConfig, EnvPrefix, value)
		}
		cfg.Metrics.Enabled = enabled
	}

	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.App.AdminUserID <= 0 {
		return fmt.Errorf("%w: app.admin_user_id must be positive", ErrInvalidConfig)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("%w: app.timezone: %v", ErrInvalidConfig, err)
	}
	if err := c.Slots.Window().Validate(); err != nil {
		return fmt.Errorf("%w: slots: %v", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	return nil
}
