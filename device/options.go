package device

// Config holds the controller configuration.
type Config struct {
	// VersionCode is the version string reported by the CPV command
	VersionCode string

	// Logger is used for logging command handling (optional)
	Logger Logger

	// StateCallback is invoked after a command mutates the state (optional)
	StateCallback StateCallback

	// InitialState is the state the controller boots with
	InitialState State
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		VersionCode:  DefaultVersionCode,
		InitialState: DefaultState(),
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithVersionCode overrides the version string reported by CPV.
//
// Example:
//
//	ctrl := device.NewController(device.WithVersionCode("LEDSC_SIM_002"))
func WithVersionCode(code string) Option {
	return func(c *Config) {
		c.VersionCode = code
	}
}

// WithLogger sets a logger for command handling.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStateCallback sets a callback invoked after each state mutation.
// The rendering loop and settings persistence both hang off this hook.
func WithStateCallback(callback StateCallback) Option {
	return func(c *Config) {
		c.StateCallback = callback
	}
}

// WithInitialState sets the state the controller boots with, typically
// loaded from persisted settings.
func WithInitialState(state State) Option {
	return func(c *Config) {
		c.InitialState = state
	}
}
