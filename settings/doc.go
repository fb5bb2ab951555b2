// Package settings persists the strip configuration across restarts: base
// color, brightness, effect, and the debug flag.
//
// The file format is deliberately plain so it can be inspected and edited
// by hand, one hex-valued key per line:
//
//	color=AF5B07
//	brightness=44
//	effect=0
//	debug=0
//
// A daemon typically loads the settings at startup, seeds the controller
// state from them, and saves them back whenever a command changes the
// state:
//
//	s, _ := settings.Load(path)
//	ctrl := device.NewController(
//	    device.WithInitialState(s.State()),
//	    device.WithStateCallback(func(st device.State) {
//	        _ = settings.Save(path, settings.FromState(st))
//	    }),
//	)
package settings
