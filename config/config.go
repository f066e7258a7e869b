// Package config loads the server's runtime configuration from a TOML
// file, with sensible defaults when no file exists. This configures the
// server process only; the plan itself lives in the store.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Port   int    `toml:"port"`
	DBPath string `toml:"db_path"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Pretty bool   `toml:"pretty"` // console writer instead of JSON
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:   8080,
			DBPath: "plan.db",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Load reads the config file at path. A missing file is not an error;
// defaults apply. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
