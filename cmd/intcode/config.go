package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when no --config
// flag is given.
const defaultConfigFile = "intcode.yaml"

// config carries runner defaults; command-line flags override every field.
type config struct {
	LogLevel string  `yaml:"log_level"`
	Inputs   []int64 `yaml:"inputs"`
	ASCII    bool    `yaml:"ascii"`
}

// loadConfig reads the YAML config at path. With an empty path the default
// file is used if present, and its absence is not an error.
func loadConfig(path string) (config, error) {
	cfg := config{LogLevel: "info"}

	optional := path == ""
	if optional {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func parseLogLevel(name string) (slog.Level, error) {
	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}
