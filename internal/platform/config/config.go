package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	envConfigPath = "BOOKRENT_CONFIG"
	envMode       = "BOOKRENT_MODE"
	envAddr       = "BOOKRENT_ADDR"
)

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"` // dev モードのみ使用
}

type StoreConfig struct {
	Seed            bool   `yaml:"seed"`
	SimulateLatency bool   `yaml:"simulate_latency"`
	IDScheme        string `yaml:"id_scheme"` // ulid | uuid | seq
}

// RentalConfig は貸出時の在庫ポリシー。両方 false なら在庫を見ない
type RentalConfig struct {
	RequireAvailable bool `yaml:"require_available"`
	MarkUnavailable  bool `yaml:"mark_unavailable"`
}

type Config struct {
	Version string       `yaml:"version"`
	Mode    string       `yaml:"mode"`
	Server  ServerConfig `yaml:"server"`
	Store   StoreConfig  `yaml:"store"`
	Rentals RentalConfig `yaml:"rentals"`
}

func defaults() Config {
	return Config{
		Mode: "dev",
		Server: ServerConfig{
			Addr:         ":8080",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Store: StoreConfig{
			Seed:            true,
			SimulateLatency: true,
			IDScheme:        "ulid",
		},
	}
}

// Load reads .env (if any), then the YAML file named by BOOKRENT_CONFIG or
// the default path, then applies the environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv(envConfigPath)
	if path == "" {
		path = DefaultConfigPath
	}
	return LoadConfig(path)
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(envMode)); v != "" {
		cfg.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(envAddr)); v != "" {
		cfg.Server.Addr = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mode != "dev" && c.Mode != "release" {
		return fmt.Errorf("mode must be dev or release, got %q", c.Mode)
	}
	switch c.Store.IDScheme {
	case "ulid", "uuid", "seq":
	default:
		return fmt.Errorf("store.id_scheme must be ulid, uuid or seq, got %q", c.Store.IDScheme)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

func (c *Config) IsDev() bool { return c.Mode == "dev" }
