package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/GameLounge-BookingService/internal/domain"
	"github.com/m04kA/GameLounge-BookingService/internal/scheduling"
)

// Config service configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Lounge   LoungeConfig   `toml:"lounge"`
	Cache    CacheConfig    `toml:"cache"`
	Jobs     JobsConfig     `toml:"jobs"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig HTTP server settings, timeouts in seconds
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	HandlerTimeout  int `toml:"handler_timeout"`
}

// DatabaseConfig PostgreSQL settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds a lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LoungeConfig business rules of the lounge
type LoungeConfig struct {
	Name                      string                    `toml:"name"`
	Timezone                  string                    `toml:"timezone"`
	OpenTime                  string                    `toml:"open_time"`  // "HH:MM"
	CloseTime                 string                    `toml:"close_time"` // "HH:MM"
	SlotIntervalMinutes       int                       `toml:"slot_interval_minutes"`
	DefaultDurationMinutes    int                       `toml:"default_duration_minutes"`
	CancellationNoticeMinutes int                       `toml:"cancellation_notice_minutes"`
	Resources                 map[string]ResourceConfig `toml:"resources"`
}

// ResourceConfig station type: number of parallel stations and hourly rate per person
type ResourceConfig struct {
	Capacity   int     `toml:"capacity"`
	HourlyRate float64 `toml:"hourly_rate"`
}

// CacheConfig catalog read cache
type CacheConfig struct {
	Size       int `toml:"size"`
	TTLSeconds int `toml:"ttl_seconds"`
}

// JobsConfig background jobs, cron syntax
type JobsConfig struct {
	CompleteBookingsEnabled  bool   `toml:"complete_bookings_enabled"`
	CompleteBookingsSchedule string `toml:"complete_bookings_schedule"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load reads .env (if present), the TOML file and environment overrides, then validates.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			HandlerTimeout:  8,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "gamelounge_booking_service",
		},
		Lounge: LoungeConfig{
			Timezone:                  "UTC",
			OpenTime:                  domain.DefaultOpenTime,
			CloseTime:                 domain.DefaultCloseTime,
			SlotIntervalMinutes:       domain.DefaultSlotIntervalMinutes,
			DefaultDurationMinutes:    domain.DefaultBookingDurationMinutes,
			CancellationNoticeMinutes: domain.DefaultCancellationNoticeMinutes,
		},
		Cache: CacheConfig{Size: 16, TTLSeconds: 300},
		Jobs: JobsConfig{
			CompleteBookingsEnabled:  true,
			CompleteBookingsSchedule: "5 0 * * *",
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("DB_SSLMODE", &c.Database.SSLMode)
	setString("LOG_LEVEL", &c.Logs.Level)

	if err := setInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	return setInt("HTTP_PORT", &c.Server.HTTPPort)
}

// Validate checks ranges and cross-field rules.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}

	l := c.Lounge
	if l.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || l.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("config: lounge.slot_interval_minutes must be in [%d, %d]",
			domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}
	if l.DefaultDurationMinutes <= 0 || l.DefaultDurationMinutes%l.SlotIntervalMinutes != 0 {
		return errors.New("config: lounge.default_duration_minutes must be a positive multiple of the slot interval")
	}
	if l.CancellationNoticeMinutes < 0 {
		return errors.New("config: lounge.cancellation_notice_minutes must not be negative")
	}
	if _, err := time.LoadLocation(l.Timezone); err != nil {
		return fmt.Errorf("config: lounge.timezone: %w", err)
	}
	if len(l.Resources) == 0 {
		return errors.New("config: at least one lounge resource is required")
	}
	for id, r := range l.Resources {
		if r.Capacity < 1 {
			return fmt.Errorf("config: lounge.resources.%s.capacity must be positive", id)
		}
		if r.HourlyRate < 0 {
			return fmt.Errorf("config: lounge.resources.%s.hourly_rate must not be negative", id)
		}
	}
	if _, err := l.Schedule(); err != nil {
		return fmt.Errorf("config: lounge: %w", err)
	}

	if c.Cache.Size <= 0 {
		return errors.New("config: cache.size must be positive")
	}
	return nil
}

// Schedule builds the immutable scheduling configuration.
func (l LoungeConfig) Schedule() (*scheduling.Config, error) {
	open, err := scheduling.ParseClock(l.OpenTime)
	if err != nil {
		return nil, err
	}
	close, err := scheduling.ParseClock(l.CloseTime)
	if err != nil {
		return nil, err
	}

	capacities := make(map[string]int, len(l.Resources))
	for id, r := range l.Resources {
		capacities[id] = r.Capacity
	}

	return scheduling.NewConfig(open, close, l.SlotIntervalMinutes, capacities)
}

// HourlyRates returns the hourly rate of every resource.
func (l LoungeConfig) HourlyRates() map[string]float64 {
	rates := make(map[string]float64, len(l.Resources))
	for id, r := range l.Resources {
		rates[id] = r.HourlyRate
	}
	return rates
}

// Location returns the lounge time zone. Validate guarantees it loads.
func (l LoungeConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l LoungeConfig) CancellationNotice() time.Duration {
	return time.Duration(l.CancellationNoticeMinutes) * time.Minute
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
