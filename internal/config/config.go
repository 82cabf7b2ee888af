package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	"github.com/m04kA/SMC-ScheduleBot/pkg/types"
)

// Config конфигурация сервиса
// Загружается один раз при старте процесса и дальше только читается
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
}

// DSN строка подключения к PostgreSQL
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
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig бизнес-правила записи на приём
type ScheduleConfig struct {
	SlotDurationMinutes   int      `toml:"slot_duration_minutes"`
	MinGapMinutes         int      `toml:"min_gap_minutes"`
	MaxAppointmentsPerDay int      `toml:"max_appointments_per_day"`
	WorkingHoursStart     string   `toml:"working_hours_start"` // HH:MM
	WorkingHoursEnd       string   `toml:"working_hours_end"`   // HH:MM
	LunchBreakStart       string   `toml:"lunch_break_start"`   // HH:MM
	LunchBreakEnd         string   `toml:"lunch_break_end"`     // HH:MM
	NonWorkingDays        []string `toml:"non_working_days"`    // английские названия дней недели
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	// Правила расписания проверяются конвертацией в доменную модель
	if _, err := c.Schedule.ToDomainRules(); err != nil {
		return err
	}
	return nil
}

// ToDomainRules конвертирует конфигурацию расписания в доменные правила с валидацией
func (s *ScheduleConfig) ToDomainRules() (*domain.ScheduleRules, error) {
	if s.SlotDurationMinutes < domain.MinSlotDurationMinutes || s.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("config: slot_duration_minutes must be between %d and %d, got %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes, s.SlotDurationMinutes)
	}
	if s.MinGapMinutes < 0 || s.MinGapMinutes > domain.MaxMinGapMinutes {
		return nil, fmt.Errorf("config: min_gap_minutes must be between 0 and %d, got %d",
			domain.MaxMinGapMinutes, s.MinGapMinutes)
	}
	if s.MaxAppointmentsPerDay <= 0 || s.MaxAppointmentsPerDay > domain.MaxAppointmentsPerDayLimit {
		return nil, fmt.Errorf("config: max_appointments_per_day must be between 1 and %d, got %d",
			domain.MaxAppointmentsPerDayLimit, s.MaxAppointmentsPerDay)
	}

	workStart, err := types.NewTimeStringFromString(s.WorkingHoursStart)
	if err != nil {
		return nil, fmt.Errorf("config: invalid working_hours_start: %v", err)
	}
	workEnd, err := types.NewTimeStringFromString(s.WorkingHoursEnd)
	if err != nil {
		return nil, fmt.Errorf("config: invalid working_hours_end: %v", err)
	}
	if !workStart.IsBefore(workEnd) {
		return nil, fmt.Errorf("config: working_hours_start %s must be before working_hours_end %s", workStart, workEnd)
	}

	lunchStart, err := types.NewTimeStringFromString(s.LunchBreakStart)
	if err != nil {
		return nil, fmt.Errorf("config: invalid lunch_break_start: %v", err)
	}
	lunchEnd, err := types.NewTimeStringFromString(s.LunchBreakEnd)
	if err != nil {
		return nil, fmt.Errorf("config: invalid lunch_break_end: %v", err)
	}
	if !lunchStart.IsBefore(lunchEnd) {
		return nil, fmt.Errorf("config: lunch_break_start %s must be before lunch_break_end %s", lunchStart, lunchEnd)
	}

	nonWorkingDays := make(map[time.Weekday]bool, len(s.NonWorkingDays))
	for _, name := range s.NonWorkingDays {
		day, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("config: invalid non_working_days entry: %v", err)
		}
		nonWorkingDays[day] = true
	}

	return &domain.ScheduleRules{
		SlotDurationMinutes:   s.SlotDurationMinutes,
		MinGapMinutes:         s.MinGapMinutes,
		MaxAppointmentsPerDay: s.MaxAppointmentsPerDay,
		WorkingHours:          domain.TimeRange{Start: workStart, End: workEnd},
		LunchBreak:            domain.TimeRange{Start: lunchStart, End: lunchEnd},
		NonWorkingDays:        nonWorkingDays,
	}, nil
}
