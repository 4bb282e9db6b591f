package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string       `yaml:"loglevel"`
	LogFile   string       `yaml:"logfile"`
	HistoryDB string       `yaml:"history_db"`
	Render    RenderConfig `yaml:"render"`
	Serve     ServeConfig  `yaml:"serve"`
}

type RenderConfig struct {
	Style string `yaml:"style"` // blocks, ascii or auto (blocks on a terminal)
	Scale int    `yaml:"scale"` // PNG pixels per cell
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFile:   "",
		HistoryDB: "",
		Render: RenderConfig{
			Style: "auto",
			Scale: 18,
		},
		Serve: ServeConfig{
			Addr: ":8977",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as needed.
// It is called the first time a config path is requested so users get a file
// with every default spelled out.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
