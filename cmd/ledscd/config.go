package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// ledscd config.toml key mapping to daemon runtime settings.
type fileConfig struct {
	Port            string `toml:"port"`
	Baud            int    `toml:"baud"`
	DisableChecksum bool   `toml:"disable_checksum"`
	VersionCode     string `toml:"version_code"`
	SettingsFile    string `toml:"settings_file"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
}

// daemonConfig is the resolved daemon configuration after overlaying the
// config file and command-line flags on the defaults.
type daemonConfig struct {
	Port            string
	Baud            int
	DisableChecksum bool
	VersionCode     string
	SettingsFile    string
	LogFile         string
	LogLevel        zapcore.Level
}

func defaultDaemonConfig() daemonConfig {
	return daemonConfig{
		Baud:     115200,
		LogLevel: zapcore.InfoLevel,
	}
}

// loadDaemonConfig reads a TOML config file with default overlay.
func loadDaemonConfig(path string) (daemonConfig, error) {
	cfg := defaultDaemonConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return daemonConfig{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return daemonConfig{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("port") {
		cfg.Port = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") {
		cfg.Baud = raw.Baud
	}
	if meta.IsDefined("disable_checksum") {
		cfg.DisableChecksum = raw.DisableChecksum
	}
	if meta.IsDefined("version_code") {
		cfg.VersionCode = strings.TrimSpace(raw.VersionCode)
	}
	if meta.IsDefined("settings_file") {
		cfg.SettingsFile = strings.TrimSpace(raw.SettingsFile)
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("log_level") {
		level, err := zapcore.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return daemonConfig{}, fmt.Errorf("load config: invalid log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = level
	}

	return cfg, cfg.validate()
}

func (c daemonConfig) validate() error {
	if c.Baud <= 0 {
		return fmt.Errorf("load config: baud must be positive, got %d", c.Baud)
	}
	return nil
}
