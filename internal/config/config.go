package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server Server `yaml:"server"`
	DB     DB     `yaml:"db"`
	Log    Log    `yaml:"log"`
	Owner  Owner  `yaml:"owner"`
	MCP    MCP    `yaml:"mcp"`
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DB struct {
	Path string `yaml:"path"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Owner configures the author-side surface. Key guards the MCP endpoint in
// HTTP mode; stdio mode is local and trusted.
type Owner struct {
	Key string `yaml:"key"`
}

type MCP struct {
	Mode string `yaml:"mode"` // "http" or "stdio"
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DB{
			Path: "easel.db",
		},
		Log: Log{
			Level: "info",
		},
		MCP: MCP{
			Mode: "http",
		},
	}

	if path := os.Getenv("EASEL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("EASEL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("EASEL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid EASEL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("EASEL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("EASEL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if key := os.Getenv("EASEL_OWNER_KEY"); key != "" {
		cfg.Owner.Key = key
	}
	if mode := os.Getenv("EASEL_MCP_MODE"); mode != "" {
		cfg.MCP.Mode = mode
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
