package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server       ServerConfig    `toml:"server"`
	Logs         LogsConfig      `toml:"logs"`
	Metrics      MetricsConfig   `toml:"metrics"`
	FleetService FleetConfig     `toml:"fleet_service"`
	Realtime     RealtimeConfig  `toml:"realtime"`
	Refresh      RefreshConfig   `toml:"refresh"`
	Floorplan    FloorplanConfig `toml:"floorplan"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // seconds
	WriteTimeout    int    `toml:"write_timeout"`    // seconds
	IdleTimeout     int    `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int    `toml:"shutdown_timeout"` // seconds
	Timezone        string `toml:"timezone"`         // IANA name, пусто = local
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

// FleetConfig настройки клиента FleetService (booking backend)
type FleetConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// RealtimeConfig настройки realtime-канала инвалидации
type RealtimeConfig struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`             // ws:// или wss://
	ReconnectDelay int    `toml:"reconnect_delay"` // seconds
}

// RefreshConfig расписания фоновых обновлений (формат robfig/cron)
type RefreshConfig struct {
	OccupancySpec string `toml:"occupancy_spec"` // например "@every 1m"
	LookupsSpec   string `toml:"lookups_spec"`   // например "@every 5m"
}

// FloorplanLane конфигурация одной полосы план-схемы
type FloorplanLane struct {
	Lane        int   `toml:"lane"`
	Count       int   `toml:"count"`
	RowPattern  []int `toml:"row_pattern"`
	OffsetSlots int   `toml:"offset_slots"`
}

// FloorplanConfig конфигурация план-схемы цеха.
// Пустой список полос означает штатную планировку (domain.DefaultLanePlan).
type FloorplanConfig struct {
	Lanes []FloorplanLane `toml:"lanes"`
}

// LanePlan конвертирует конфигурацию план-схемы в доменную структуру
func (f FloorplanConfig) LanePlan() domain.LanePlan {
	if len(f.Lanes) == 0 {
		return domain.DefaultLanePlan()
	}
	plan := domain.LanePlan{Lanes: make([]domain.LaneSpec, 0, len(f.Lanes))}
	for _, lane := range f.Lanes {
		pattern := lane.RowPattern
		if len(pattern) == 0 {
			pattern = []int{1}
		}
		plan.Lanes = append(plan.Lanes, domain.LaneSpec{
			Lane:          lane.Lane,
			ExpectedCount: lane.Count,
			RowPattern:    pattern,
			OffsetSlots:   lane.OffsetSlots,
		})
	}
	return plan
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8091,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "smc-scheduling-console"},
		FleetService: FleetConfig{
			Timeout: 10,
		},
		Realtime: RealtimeConfig{
			Enabled:        true,
			ReconnectDelay: 3,
		},
		Refresh: RefreshConfig{
			OccupancySpec: "@every 1m",
			LookupsSpec:   "@every 5m",
		},
	}
}

func (c *Config) validate() error {
	if c.FleetService.URL == "" {
		return fmt.Errorf("config: fleet_service.url is required")
	}
	if c.Realtime.Enabled && c.Realtime.URL == "" {
		return fmt.Errorf("config: realtime.url is required when realtime is enabled")
	}
	for _, lane := range c.Floorplan.Lanes {
		if lane.Lane <= 0 || lane.Count <= 0 {
			return fmt.Errorf("config: floorplan lane %d: lane and count must be positive", lane.Lane)
		}
		for _, cols := range lane.RowPattern {
			if cols != 1 && cols != 2 {
				return fmt.Errorf("config: floorplan lane %d: row pattern values must be 1 or 2", lane.Lane)
			}
		}
	}
	return nil
}
