package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/ledsc/go-ledsc/device"
	"github.com/ledsc/go-ledsc/protocol"
)

// Client drives an LED strip controller from the host side of the serial
// link. It builds request packets, writes encoded frames, accumulates the
// response line, and checks the status parameter.
//
// Client is not safe for concurrent use: the protocol carries one command
// and one response in flight at a time.
type Client struct {
	device io.ReadWriter
	codec  *protocol.Codec
	acc    protocol.Accumulator
	config Config
}

// New creates a Client over the given transport. The transport must
// implement io.ReadWriter for communication with the controller.
//
// Example:
//
//	port, _ := serial.OpenPort(&serial.Config{Name: "/dev/ttyACM0", Baud: 115200})
//	c := client.New(port, client.WithLogger(logger))
func New(device io.ReadWriter, opts ...Option) *Client {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var codecOpts []protocol.Option
	if !cfg.Checksum {
		codecOpts = append(codecOpts, protocol.WithoutChecksum())
	}

	return &Client{
		device: device,
		codec:  protocol.NewCodec(codecOpts...),
		config: cfg,
	}
}

// Version queries the controller's version code.
func (c *Client) Version(ctx context.Context) (string, error) {
	rsp, err := c.roundTrip(ctx, device.CmdPrintVersion)
	if err != nil {
		return "", err
	}
	return rsp.Param(1), nil
}

// SetColor sets the base color to the given 24-bit RGB value.
func (c *Client) SetColor(ctx context.Context, rgb uint32) error {
	if rgb > 0xFFFFFF {
		return fmt.Errorf("color 0x%X exceeds 24 bits", rgb)
	}
	_, err := c.roundTrip(ctx, device.CmdSetColor, fmt.Sprintf("%06X", rgb))
	return err
}

// SetBrightness sets the strip brightness (0-255).
func (c *Client) SetBrightness(ctx context.Context, level uint8) error {
	_, err := c.roundTrip(ctx, device.CmdSetBrightness, fmt.Sprintf("%X", level))
	return err
}

// SetEffect selects the active strip effect.
func (c *Client) SetEffect(ctx context.Context, effect device.Effect) error {
	if !effect.Valid() {
		return fmt.Errorf("unknown effect code 0x%X", uint8(effect))
	}
	_, err := c.roundTrip(ctx, device.CmdSetEffect, fmt.Sprintf("%X", uint8(effect)))
	return err
}

// SetDebugging enables or disables the controller's debug output.
func (c *Client) SetDebugging(ctx context.Context, on bool) error {
	param := "0"
	if on {
		param = "1"
	}
	_, err := c.roundTrip(ctx, device.CmdSetDebugging, param)
	return err
}

// roundTrip sends one command and reads the response line. The response's
// status parameter is checked; a non-zero code surfaces as a *DeviceError.
func (c *Client) roundTrip(ctx context.Context, name string, params ...string) (*protocol.Packet, error) {
	req, err := protocol.NewRequest(name, params...)
	if err != nil {
		return nil, err
	}

	frame := c.codec.Encode(req)
	if _, err := c.device.Write(frame); err != nil {
		return nil, fmt.Errorf("write command: %w", err)
	}
	c.logDebug("command sent", "frame", string(frame))

	raw, err := c.readFrame(ctx)
	if err != nil {
		return nil, err
	}

	rsp := &protocol.Packet{}
	if _, err := c.codec.Decode(raw, rsp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if rsp.Name() != name {
		return nil, fmt.Errorf("response for %q arrived while waiting for %q", rsp.Name(), name)
	}
	if rsp.ParamCount() < 1 {
		return nil, fmt.Errorf("response for %q carries no status parameter", name)
	}

	code, err := strconv.ParseInt(rsp.Param(0), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("response for %q has malformed status %q", name, rsp.Param(0))
	}
	if code != 0 {
		return nil, &DeviceError{Command: name, Code: protocol.Code(code)}
	}

	return rsp, nil
}

// readFrame accumulates transport bytes until a complete response line
// arrives. Cancellation is observed between reads.
func (c *Client) readFrame(ctx context.Context) ([]byte, error) {
	c.acc.Reset()
	buf := make([]byte, c.config.ReadBufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := c.device.Read(buf)
		for i := 0; i < n; i++ {
			frame, ferr := c.acc.Feed(buf[i])
			if ferr != nil {
				return nil, fmt.Errorf("accumulate response: %w", ferr)
			}
			if len(frame) > 0 {
				return frame, nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("transport closed before a response arrived")
			}
			return nil, fmt.Errorf("read response: %w", err)
		}
	}
}

func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}
