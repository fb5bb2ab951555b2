package client

import "github.com/ledsc/go-ledsc/device"

// Config holds the client configuration.
type Config struct {
	// Checksum enables the CRC-16 suffix on commands and validates it on
	// responses. Must match the controller build.
	Checksum bool

	// Logger is used for logging command traffic (optional)
	Logger device.Logger

	// ReadBufferSize is the transport read chunk size
	ReadBufferSize int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Checksum:       true,
		ReadBufferSize: device.DefaultReadBufferSize,
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithoutChecksum disables frame integrity checking, for controllers built
// without the checksum suffix.
func WithoutChecksum() Option {
	return func(c *Config) {
		c.Checksum = false
	}
}

// WithLogger sets a logger for command traffic.
func WithLogger(logger device.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadBufferSize sets the transport read chunk size.
func WithReadBufferSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ReadBufferSize = size
		}
	}
}
