// Command ledscctl drives an LED strip controller from the command line:
// it opens the serial port, sends one command, and prints the result.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tarm/serial"
	"github.com/urfave/cli/v2"

	"github.com/ledsc/go-ledsc/client"
	"github.com/ledsc/go-ledsc/device"
)

func main() {
	app := &cli.App{
		Name:  "ledscctl",
		Usage: "control an LED strip over a serial port",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "port",
				Aliases:  []string{"p"},
				Usage:    "serial port device, e.g. /dev/ttyACM0",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "baud",
				Aliases: []string{"b"},
				Usage:   "serial baud rate",
				Value:   115200,
			},
			&cli.BoolFlag{
				Name:  "disable-checksum",
				Usage: "talk to a controller built without the CRC-16 suffix",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up if the controller does not answer in time",
				Value: 2 * time.Second,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the controller's version code",
				Action: withClient(func(ctx context.Context, c *client.Client, _ *cli.Context) error {
					version, err := c.Version(ctx)
					if err != nil {
						return err
					}
					fmt.Println(version)
					return nil
				}),
			},
			{
				Name:      "color",
				Usage:     "set the base color",
				ArgsUsage: "RRGGBB",
				Action: withClient(func(ctx context.Context, c *client.Client, cc *cli.Context) error {
					rgb, err := parseHexArg(cc, "color", 24)
					if err != nil {
						return err
					}
					return c.SetColor(ctx, uint32(rgb))
				}),
			},
			{
				Name:      "brightness",
				Usage:     "set the strip brightness",
				ArgsUsage: "XX (hex, 0-FF)",
				Action: withClient(func(ctx context.Context, c *client.Client, cc *cli.Context) error {
					level, err := parseHexArg(cc, "brightness", 8)
					if err != nil {
						return err
					}
					return c.SetBrightness(ctx, uint8(level))
				}),
			},
			{
				Name:      "effect",
				Usage:     "select the active effect",
				ArgsUsage: "CODE (hex, 0-9)",
				Action: withClient(func(ctx context.Context, c *client.Client, cc *cli.Context) error {
					code, err := parseHexArg(cc, "effect", 8)
					if err != nil {
						return err
					}
					effect := device.Effect(code)
					if err := c.SetEffect(ctx, effect); err != nil {
						return err
					}
					fmt.Println(effect.String())
					return nil
				}),
			},
			{
				Name:      "debug",
				Usage:     "toggle the controller's debug output",
				ArgsUsage: "on|off",
				Action: withClient(func(ctx context.Context, c *client.Client, cc *cli.Context) error {
					switch cc.Args().First() {
					case "on":
						return c.SetDebugging(ctx, true)
					case "off":
						return c.SetDebugging(ctx, false)
					default:
						return fmt.Errorf("debug takes on or off, got %q", cc.Args().First())
					}
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withClient opens the serial port from the global flags and hands a ready
// client to the command action.
func withClient(action func(context.Context, *client.Client, *cli.Context) error) cli.ActionFunc {
	return func(cc *cli.Context) error {
		port, err := serial.OpenPort(&serial.Config{
			Name:        cc.String("port"),
			Baud:        cc.Int("baud"),
			ReadTimeout: cc.Duration("timeout"),
		})
		if err != nil {
			return fmt.Errorf("open serial port %s: %w", cc.String("port"), err)
		}
		defer func() { _ = port.Close() }()

		var opts []client.Option
		if cc.Bool("disable-checksum") {
			opts = append(opts, client.WithoutChecksum())
		}

		ctx, cancel := context.WithTimeout(context.Background(), cc.Duration("timeout"))
		defer cancel()

		return action(ctx, client.New(port, opts...), cc)
	}
}

// parseHexArg reads the command's single hex argument and bounds-checks it
// against the given bit width.
func parseHexArg(cc *cli.Context, what string, bits int) (uint64, error) {
	arg := cc.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("%s takes one hex argument", what)
	}
	v, err := strconv.ParseUint(arg, 16, 32)
	if err != nil || v >= 1<<bits {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return v, nil
}
