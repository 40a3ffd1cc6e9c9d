package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Pricing   PricingConfig   `toml:"pricing"`
	Inventory InventoryConfig `toml:"inventory"`
	Alerts    AlertsConfig    `toml:"alerts"`
	Booking   BookingConfig   `toml:"booking"`
	History   HistoryConfig   `toml:"history"`
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

	// URL из переменной окружения DATABASE_URL, имеет приоритет над полями выше
	URL string `toml:"-"`
}

// DSN возвращает строку подключения к БД
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PeakWindowConfig час начала и час окончания (не включительно) пикового окна
type PeakWindowConfig struct {
	StartHour int `toml:"start_hour"`
	EndHour   int `toml:"end_hour"`
}

// PricingConfig тарифы парковки
type PricingConfig struct {
	BaseRate       float64            `toml:"base_rate"`
	FreeHours      float64            `toml:"free_hours"`
	PenaltyRate    float64            `toml:"penalty_rate"`
	PeakMultiplier float64            `toml:"peak_multiplier"`
	Currency       string             `toml:"currency"`
	Timezone       string             `toml:"timezone"`
	PeakWindows    []PeakWindowConfig `toml:"peak_windows"`
}

// InventoryConfig состав парковки
type InventoryConfig struct {
	TotalCapacity int      `toml:"total_capacity"`
	Zones         []string `toml:"zones"`
	SeedOnStart   bool     `toml:"seed_on_start"`
}

// AlertsConfig пороги алертов
type AlertsConfig struct {
	CriticalOccupancy float64 `toml:"critical_occupancy"`
	WarningOccupancy  float64 `toml:"warning_occupancy"`
	RevenueMilestone  float64 `toml:"revenue_milestone"`
}

// BookingConfig ограничения бронирования
type BookingConfig struct {
	MinDurationHours      int `toml:"min_duration_hours"`
	MaxDurationHours      int `toml:"max_duration_hours"`
	MaxAllocationAttempts int `toml:"max_allocation_attempts"`
	ActivityLogLimit      int `toml:"activity_log_limit"`
}

// HistoryConfig размер буфера истории загрузки
type HistoryConfig struct {
	Size int `toml:"size"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	pricing := domain.DefaultPricingConfig()
	windows := make([]PeakWindowConfig, 0, len(pricing.PeakWindows))
	for _, w := range pricing.PeakWindows {
		windows = append(windows, PeakWindowConfig{StartHour: w.StartHour, EndHour: w.EndHour})
	}

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
			Password:        "postgres",
			DBName:          "parking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc-parkingservice",
		},
		Pricing: PricingConfig{
			BaseRate:       pricing.BaseRate,
			FreeHours:      pricing.FreeHours,
			PenaltyRate:    pricing.PenaltyRate,
			PeakMultiplier: pricing.PeakMultiplier,
			Currency:       pricing.Currency,
			Timezone:       "Local",
			PeakWindows:    windows,
		},
		Inventory: InventoryConfig{
			TotalCapacity: domain.DefaultTotalCapacity,
			Zones:         append([]string(nil), domain.DefaultZones...),
			SeedOnStart:   true,
		},
		Alerts: AlertsConfig{
			CriticalOccupancy: domain.DefaultCriticalOccupancy,
			WarningOccupancy:  domain.DefaultWarningOccupancy,
			RevenueMilestone:  domain.DefaultRevenueMilestone,
		},
		Booking: BookingConfig{
			MinDurationHours:      domain.MinBookingDurationHours,
			MaxDurationHours:      domain.MaxBookingDurationHours,
			MaxAllocationAttempts: domain.DefaultMaxAllocationAttempts,
			ActivityLogLimit:      domain.DefaultActivityLogLimit,
		},
		History: HistoryConfig{
			Size: domain.DefaultHistorySize,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Переменные окружения (и .env, если он есть) переопределяют часть настроек
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Server.HTTPPort = getEnvInt("HTTP_PORT", cfg.Server.HTTPPort)
	cfg.Logs.Level = getEnv("LOG_LEVEL", cfg.Logs.Level)
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	p := c.Pricing
	if p.BaseRate < 0 || p.PenaltyRate < 0 || p.FreeHours < 0 {
		return fmt.Errorf("%w: pricing rates and free hours must be non-negative", ErrInvalidConfig)
	}
	if p.PeakMultiplier <= 0 {
		return fmt.Errorf("%w: pricing.peak_multiplier must be positive", ErrInvalidConfig)
	}
	for i, w := range p.PeakWindows {
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return fmt.Errorf("%w: pricing.peak_windows[%d] must satisfy 0 <= start_hour < end_hour <= 24", ErrInvalidConfig, i)
		}
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("%w: pricing.timezone %q: %v", ErrInvalidConfig, p.Timezone, err)
	}

	if c.Inventory.TotalCapacity < 0 {
		return fmt.Errorf("%w: inventory.total_capacity must be non-negative", ErrInvalidConfig)
	}
	if c.Inventory.SeedOnStart && len(c.Inventory.Zones) == 0 {
		return fmt.Errorf("%w: inventory.zones must not be empty when seed_on_start is set", ErrInvalidConfig)
	}

	b := c.Booking
	if b.MinDurationHours < 1 || b.MaxDurationHours < b.MinDurationHours {
		return fmt.Errorf("%w: booking duration bounds must satisfy 1 <= min <= max", ErrInvalidConfig)
	}
	if b.MaxAllocationAttempts < 1 {
		return fmt.Errorf("%w: booking.max_allocation_attempts must be at least 1", ErrInvalidConfig)
	}
	if b.ActivityLogLimit < 1 {
		return fmt.Errorf("%w: booking.activity_log_limit must be at least 1", ErrInvalidConfig)
	}

	if c.History.Size < 1 {
		return fmt.Errorf("%w: history.size must be at least 1", ErrInvalidConfig)
	}

	return nil
}

// PricingDomain переводит настройки тарифов в доменную модель
func (c *Config) PricingDomain() domain.PricingConfig {
	windows := make([]domain.PeakWindow, 0, len(c.Pricing.PeakWindows))
	for _, w := range c.Pricing.PeakWindows {
		windows = append(windows, domain.PeakWindow{StartHour: w.StartHour, EndHour: w.EndHour})
	}
	return domain.PricingConfig{
		BaseRate:       c.Pricing.BaseRate,
		FreeHours:      c.Pricing.FreeHours,
		PenaltyRate:    c.Pricing.PenaltyRate,
		PeakMultiplier: c.Pricing.PeakMultiplier,
		PeakWindows:    windows,
		Currency:       c.Pricing.Currency,
	}
}

// AlertThresholds переводит пороги алертов в доменную модель
func (c *Config) AlertThresholds() domain.AlertThresholds {
	return domain.AlertThresholds{
		CriticalOccupancy: c.Alerts.CriticalOccupancy,
		WarningOccupancy:  c.Alerts.WarningOccupancy,
		RevenueMilestone:  c.Alerts.RevenueMilestone,
	}
}

// Location возвращает часовой пояс, в котором считаются пиковые часы
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Pricing.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
	}
	return defaultValue
}
