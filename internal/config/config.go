// Package config loads the daemon configuration from an optional TOML file,
// layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"
)

const (
	// DefaultListenAddr is the UDP address served when no config overrides it.
	// Port 8000 is the conventional OSC port.
	DefaultListenAddr = ":8000"

	DefaultServerName = "oscd"
)

// Config holds the daemon settings.
type Config struct {
	ListenAddr  string
	ServerName  string
	ReadTimeout time.Duration
	LogPath     string
	LogLevel    string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr: DefaultListenAddr,
		ServerName: DefaultServerName,
		LogLevel:   "info",
	}
}

type fileConfig struct {
	ListenAddr  string `toml:"listen_addr"`
	ServerName  string `toml:"server_name"`
	ReadTimeout string `toml:"read_timeout"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
}

// Load reads the TOML file at path and overlays it on the defaults. Keys
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}

	if meta.IsDefined("server_name") {
		cfg.ServerName = strings.TrimSpace(raw.ServerName)
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return nil, fmt.Errorf("parse read_timeout: %w", err)
		}
		cfg.ReadTimeout = d
	}

	if meta.IsDefined("log_path") {
		cfg.LogPath = strings.TrimSpace(raw.LogPath)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen address is required")
	}
	if c.ServerName == "" {
		return errors.New("server name is required")
	}
	if c.ReadTimeout < 0 {
		return errors.New("read timeout must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c *Config) Level() (charmlog.Level, error) {
	return charmlog.ParseLevel(c.LogLevel)
}
