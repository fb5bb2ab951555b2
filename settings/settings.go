package settings

import (
	"github.com/ledsc/go-ledsc/device"
)

// Settings is the persistent strip configuration: everything the controller
// must remember across power cycles.
type Settings struct {
	// Color is the base color as 24-bit RGB
	Color uint32

	// Brightness is the strip brightness (0-255)
	Brightness uint8

	// Effect is the active strip effect
	Effect device.Effect

	// Debugging enables the controller's debug output
	Debugging bool
}

// Defaults returns the factory settings applied when no settings file
// exists yet.
func Defaults() Settings {
	return FromState(device.DefaultState())
}

// FromState captures a controller state as persistable settings.
func FromState(st device.State) Settings {
	return Settings{
		Color:      st.Color,
		Brightness: st.Brightness,
		Effect:     st.Effect,
		Debugging:  st.Debugging,
	}
}

// State converts the settings back into a controller state, suitable for
// device.WithInitialState.
func (s Settings) State() device.State {
	return device.State{
		Color:      s.Color,
		Brightness: s.Brightness,
		Effect:     s.Effect,
		Debugging:  s.Debugging,
	}
}
