// Command ledscd serves the LED strip command protocol on a serial port:
// it loads the persisted strip settings, opens the port, and answers
// commands until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tarm/serial"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ledsc/go-ledsc/device"
	"github.com/ledsc/go-ledsc/settings"
)

func main() {
	app := &cli.App{
		Name:  "ledscd",
		Usage: "LED strip controller daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the TOML config file",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "serial port device, e.g. /dev/ttyACM0, or - for stdio",
			},
			&cli.IntFlag{
				Name:    "baud",
				Aliases: []string{"b"},
				Usage:   "serial baud rate",
			},
			&cli.BoolFlag{
				Name:  "disable-checksum",
				Usage: "serve frames without the CRC-16 suffix",
			},
			&cli.StringFlag{
				Name:  "settings",
				Usage: "path to the persisted strip settings file",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "log to a rotated file instead of the console",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "minimum log level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := defaultDaemonConfig()
	if path := c.String("config"); path != "" {
		loaded, err := loadDaemonConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over the config file.
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("baud") {
		cfg.Baud = c.Int("baud")
	}
	if c.IsSet("disable-checksum") {
		cfg.DisableChecksum = c.Bool("disable-checksum")
	}
	if c.IsSet("settings") {
		cfg.SettingsFile = c.String("settings")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("log-level") {
		level, err := zapcore.ParseLevel(c.String("log-level"))
		if err != nil {
			return fmt.Errorf("invalid log-level %q", c.String("log-level"))
		}
		cfg.LogLevel = level
	}

	if cfg.Port == "" {
		return errors.New("a serial port is required, set --port or the config file's port key")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, flush, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer flush()

	return serve(cfg, logger)
}

// stdio serves the protocol on the daemon's own standard streams, mostly
// for trying commands interactively without hardware.
type stdio struct{}

func (stdio) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdio) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func serve(cfg daemonConfig, logger *zap.SugaredLogger) error {
	persisted := settings.Defaults()
	if cfg.SettingsFile != "" {
		var err error
		persisted, err = settings.Load(cfg.SettingsFile)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
	}

	ctrlOpts := []device.Option{
		device.WithInitialState(persisted.State()),
		device.WithLogger(deviceLogger{logger.Named("device")}),
	}
	if cfg.VersionCode != "" {
		ctrlOpts = append(ctrlOpts, device.WithVersionCode(cfg.VersionCode))
	}
	if cfg.SettingsFile != "" {
		path := cfg.SettingsFile
		ctrlOpts = append(ctrlOpts, device.WithStateCallback(func(st device.State) {
			if err := settings.Save(path, settings.FromState(st)); err != nil {
				logger.Errorw("persist settings", "path", path, "error", err)
			}
		}))
	}
	ctrl := device.NewController(ctrlOpts...)

	var transport io.ReadWriter
	if cfg.Port == "-" {
		transport = stdio{}
	} else {
		port, err := serial.OpenPort(&serial.Config{Name: cfg.Port, Baud: cfg.Baud})
		if err != nil {
			return fmt.Errorf("open serial port %s: %w", cfg.Port, err)
		}
		defer func() { _ = port.Close() }()
		transport = port
	}

	sessOpts := []device.SessionOption{
		device.WithSessionLogger(deviceLogger{logger.Named("session")}),
	}
	if cfg.DisableChecksum {
		sessOpts = append(sessOpts, device.WithChecksumDisabled())
	}
	sess := device.NewSession(transport, ctrl, sessOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infow("serving", "port", cfg.Port, "baud", cfg.Baud, "checksum", !cfg.DisableChecksum)
	if err := sess.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Infow("shut down")
	return nil
}
