package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Database   Database   `yaml:"database"`
	Log        Log        `yaml:"log"`
	Audit      Audit      `yaml:"audit"`
	Kafka      Kafka      `yaml:"kafka"`
	Label      Label      `yaml:"label"`
	Warranty   Warranty   `yaml:"warranty"`
	Vocabulary Vocabulary `yaml:"vocabulary"`
}

type Server struct {
	Port string `yaml:"port"`
}

type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Audit struct {
	Actor        string `yaml:"actor"`
	HistoryLimit int    `yaml:"history_limit"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type Label struct {
	Size int `yaml:"size"`
}

type Warranty struct {
	AlertDays int `yaml:"alert_days"`
}

type Vocabulary struct {
	Categories        []string `yaml:"categories"`
	Statuses          []string `yaml:"statuses"`
	Locations         []string `yaml:"locations"`
	ActiveStatus      string   `yaml:"active_status"`
	MaintenanceStatus string   `yaml:"maintenance_status"`
	BrokenStatus      string   `yaml:"broken_status"`
}

// DefaultConfig returns the configuration used when no file or environment overrides exist.
func DefaultConfig() *Config {
	return &Config{
		Server:   Server{Port: "5000"},
		Database: Database{Driver: "sqlite", DSN: "inventory.db"},
		Log:      Log{Level: "info"},
		Audit:    Audit{Actor: "Admin", HistoryLimit: 100},
		Kafka:    Kafka{Topic: "asset-status"},
		Label:    Label{Size: 370},
		Warranty: Warranty{AlertDays: 30},
		Vocabulary: Vocabulary{
			Categories:        []string{"Laptop", "Desktop", "Server", "Network", "Printer", "Mobile", "Lainnya"},
			Statuses:          []string{"Aktif", "Maintenance", "Rusak", "Retired"},
			Locations:         []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Bali"},
			ActiveStatus:      "Aktif",
			MaintenanceStatus: "Maintenance",
			BrokenStatus:      "Rusak",
		},
	}
}

// Load reads configuration from path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvironment(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("REST_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AUDIT_ACTOR"); v != "" {
		cfg.Audit.Actor = v
	}
	if v := os.Getenv("BOOTSTRAP_SERVERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("EVENT_TOPIC_ASSET_STATUS"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("LABEL_SIZE"); v != "" {
		if s, err := strconv.Atoi(v); err == nil {
			cfg.Label.Size = s
		}
	}
}

func applyDefaults(cfg *Config) {
	d := DefaultConfig()
	if cfg.Server.Port == "" {
		cfg.Server.Port = d.Server.Port
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = d.Database.Driver
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = d.Database.DSN
	}
	if cfg.Audit.Actor == "" {
		cfg.Audit.Actor = d.Audit.Actor
	}
	if cfg.Audit.HistoryLimit <= 0 {
		cfg.Audit.HistoryLimit = d.Audit.HistoryLimit
	}
	if cfg.Label.Size <= 0 {
		cfg.Label.Size = d.Label.Size
	}
	if cfg.Warranty.AlertDays < 0 {
		cfg.Warranty.AlertDays = d.Warranty.AlertDays
	}
	if len(cfg.Vocabulary.Categories) == 0 {
		cfg.Vocabulary.Categories = d.Vocabulary.Categories
	}
	if len(cfg.Vocabulary.Statuses) == 0 {
		cfg.Vocabulary.Statuses = d.Vocabulary.Statuses
	}
	if len(cfg.Vocabulary.Locations) == 0 {
		cfg.Vocabulary.Locations = d.Vocabulary.Locations
	}
	if cfg.Vocabulary.ActiveStatus == "" {
		cfg.Vocabulary.ActiveStatus = d.Vocabulary.ActiveStatus
	}
	if cfg.Vocabulary.MaintenanceStatus == "" {
		cfg.Vocabulary.MaintenanceStatus = d.Vocabulary.MaintenanceStatus
	}
	if cfg.Vocabulary.BrokenStatus == "" {
		cfg.Vocabulary.BrokenStatus = d.Vocabulary.BrokenStatus
	}
}
