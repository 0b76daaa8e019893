package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// envExtraRate переменная окружения, переопределяющая ставку за событие сверх квоты
// Применяется один раз при загрузке конфигурации; в рантайме окружение не читается
const envExtraRate = "COMP_EXTRA_RATE"

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Compensation CompensationConfig `toml:"compensation"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки журнала бронирований
type BookingConfig struct {
	// MaxDJsPerDay максимум различных диджеев на один салон и дату
	MaxDJsPerDay int `toml:"max_djs_per_day"`
}

// CompensationConfig настройки расчета вознаграждения
type CompensationConfig struct {
	// BaseQuota число событий в месяц, покрытых фиксированной ставкой
	BaseQuota int `toml:"base_quota"`
	// ExtraRate ставка за событие сверх квоты, целые единицы валюты
	ExtraRate int64 `toml:"extra_rate"`
}

// Load загружает конфигурацию из TOML файла
// Если рядом есть .env, он подгружается до чтения файла;
// единственный канонический источник ставки - [compensation], окружение
// может её переопределить один раз при старте
func Load(path string) (*Config, error) {
	// .env опционален, его отсутствие не является ошибкой
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if raw := os.Getenv(envExtraRate); raw != "" {
		rate, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("config: invalid %s value %q", envExtraRate, raw)
		}
		cfg.Compensation.ExtraRate = rate
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/djb-schedule-service.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "djb-schedule-service"
	}
	if c.Booking.MaxDJsPerDay == 0 {
		c.Booking.MaxDJsPerDay = domain.MaxDJsPerDay
	}
	if c.Compensation.BaseQuota == 0 {
		c.Compensation.BaseQuota = domain.DefaultBaseQuota
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.MaxDJsPerDay < 1 {
		return fmt.Errorf("config: booking.max_djs_per_day must be positive")
	}
	if c.Compensation.BaseQuota < 0 {
		return fmt.Errorf("config: compensation.base_quota must not be negative")
	}
	if c.Compensation.ExtraRate < 0 {
		return fmt.Errorf("config: compensation.extra_rate must not be negative")
	}
	return nil
}
