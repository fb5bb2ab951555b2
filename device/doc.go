// Package device implements the LED strip controller behind the serial
// command protocol: the command handlers, the mutable device state, and the
// session loop that pumps bytes between a transport and the protocol core.
//
// # Commands
//
//	CPV  print version          -> success + version code parameter
//	CFR  full reset             -> not implemented
//	CEB  enter bootloader       -> not implemented
//	CSD  set debugging          -> 0 off, nonzero on
//	CSE  set effect             -> effect code in hex, see Effect
//	CSC  set color              -> 24-bit RGB in hex
//	CSB  set brightness         -> 0-FF in hex
//
// Every response carries the status code as its first parameter: "0" for
// success, the negative protocol code otherwise.
//
// # Hardware Independence
//
// This package does not drive LEDs. The Controller stops at a state
// callback; the rendering loop (and settings persistence) subscribe there:
//
//	ctrl := device.NewController(
//	    device.WithStateCallback(func(st device.State) {
//	        strip.Apply(st.Color, st.Brightness, st.Effect)
//	    }),
//	)
//
// # Serving a Transport
//
// A Session works over any io.ReadWriter — a serial port, a network
// connection, or an in-memory pipe for tests:
//
//	sess := device.NewSession(port, ctrl)
//	if err := sess.Serve(ctx); err != nil {
//	    log.Fatal(err)
//	}
package device
