package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается один раз при старте процесса
// и дальше передается явно — никакого глобального состояния
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	SlotService SlotServiceConfig `toml:"slot_service"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotServiceConfig параметры upstream-провайдера расписаний (Slot API)
type SlotServiceConfig struct {
	BaseURL          string `toml:"base_url"`
	AvailabilityPath string `toml:"availability_path"` // шаблон с %s для даты недели в формате yyyyMMdd
	TakeSlotPath     string `toml:"take_slot_path"`
	Username         string `toml:"username"`
	Password         string `toml:"password"`
	Timeout          int    `toml:"timeout"` // секунды

	// LegacyDayMapping включает историческое сопоставление дней недели датам:
	// позиционный сдвиг по порядку ключей ответа и якорь недели от текущего дня
	LegacyDayMapping bool `toml:"legacy_day_mapping"`
}

// Load читает конфигурацию из TOML-файла и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// Учётные данные Slot API не обязаны лежать в config.toml
	if v := os.Getenv("SLOT_SERVICE_USERNAME"); v != "" {
		cfg.SlotService.Username = v
	}
	if v := os.Getenv("SLOT_SERVICE_PASSWORD"); v != "" {
		cfg.SlotService.Password = v
	}

	cfg.applyDefaults()

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
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.SlotService.Timeout == 0 {
		c.SlotService.Timeout = 30
	}
}
