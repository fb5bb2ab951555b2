package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDaemonConfig(t *testing.T) {
	path := writeConfig(t, `
port = "/dev/ttyACM0"
baud = 9600
disable_checksum = true
version_code = "LEDSC_RIG_007"
settings_file = "/var/lib/ledscd/strip.conf"
log_file = "/var/log/ledscd.log"
log_level = "debug"
`)

	cfg, err := loadDaemonConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Port)
	assert.Equal(t, 9600, cfg.Baud)
	assert.True(t, cfg.DisableChecksum)
	assert.Equal(t, "LEDSC_RIG_007", cfg.VersionCode)
	assert.Equal(t, "/var/lib/ledscd/strip.conf", cfg.SettingsFile)
	assert.Equal(t, "/var/log/ledscd.log", cfg.LogFile)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoadDaemonConfigDefaults(t *testing.T) {
	path := writeConfig(t, `port = "/dev/ttyUSB1"`)

	cfg, err := loadDaemonConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB1", cfg.Port)
	assert.Equal(t, 115200, cfg.Baud)
	assert.False(t, cfg.DisableChecksum)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoadDaemonConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "unknown key",
			content: `prot = "/dev/ttyACM0"`,
			errMsg:  "unknown key",
		},
		{
			name:    "bad log level",
			content: `log_level = "chatty"`,
			errMsg:  "invalid log_level",
		},
		{
			name:    "non-positive baud",
			content: `baud = 0`,
			errMsg:  "baud must be positive",
		},
		{
			name:    "malformed toml",
			content: `port = `,
			errMsg:  "load config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadDaemonConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadDaemonConfigMissingFile(t *testing.T) {
	_, err := loadDaemonConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
