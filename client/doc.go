// Package client provides the host side of the LED strip controller
// protocol: it sends commands over any io.ReadWriter transport and waits
// for the controller's response line.
//
// # Basic Usage
//
//	port, err := serial.OpenPort(&serial.Config{Name: "/dev/ttyACM0", Baud: 115200})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := client.New(port)
//
//	version, err := c.Version(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("controller:", version)
//
//	if err := c.SetColor(ctx, 0xAF5B07); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// A command the controller received but rejected comes back as a
// *DeviceError carrying the command name and the reported status code;
// transport and framing failures come back as ordinary wrapped errors.
//
//	if err := c.SetBrightness(ctx, 0x80); err != nil {
//	    var devErr *client.DeviceError
//	    if errors.As(err, &devErr) {
//	        fmt.Println("rejected with", devErr.Code)
//	    }
//	}
package client
