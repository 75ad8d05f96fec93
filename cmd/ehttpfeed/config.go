package main

import (
	"os"

	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"
	"github.com/pkg/errors"
)

// Config is the top-level configuration for the ehttpfeed demo host.
type Config struct {
	Listen  string        `config:"listen"`
	Mode    string        `config:"mode"` // "request", "response", or "detect"
	Logging LoggingConfig `config:"logging"`
	Admin   AdminConfig   `config:"admin"`
}

type LoggingConfig struct {
	Stdout bool   `config:"stdout"`
	Level  string `config:"level"`
}

type AdminConfig struct {
	Enabled bool   `config:"enabled"`
	Address string `config:"address"`
}

func defaultConfig() Config {
	return Config{
		Listen: "127.0.0.1:8080",
		Mode:   "detect",
		Logging: LoggingConfig{
			Stdout: true,
			Level:  "info",
		},
		Admin: AdminConfig{
			Enabled: true,
			Address: "127.0.0.1:9090",
		},
	}
}

// loadConfigPath reads and unpacks a YAML config file at path, falling
// back to defaultConfig's values for anything the file leaves unset. An
// empty path is not an error: it just returns the defaults.
func loadConfigPath(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config file %q", path)
	}
	if err := raw.Unpack(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "unpacking config file %q", path)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
