package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledsc/go-ledsc/device"
)

// Keys recognized in a settings file. All values are hex-encoded.
const (
	// KeyColor holds the base color as 24-bit RGB
	KeyColor = "color"

	// KeyBrightness holds the strip brightness (00-FF)
	KeyBrightness = "brightness"

	// KeyEffect holds the active effect code
	KeyEffect = "effect"

	// KeyDebug holds the debug output flag (0 or 1)
	KeyDebug = "debug"
)

// maxColor is the largest value representable in 24-bit RGB.
const maxColor = 0xFFFFFF

// Load reads a settings file from the given path. A missing file is not an
// error: the factory defaults are returned so first boot works without any
// provisioning step.
//
// Example:
//
//	s, err := settings.Load("/var/lib/ledscd/strip.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctrl := device.NewController(device.WithInitialState(s.State()))
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads settings from any io.Reader.
// This is useful for testing and reading from non-file sources.
//
// The format is one key=value pair per line, values in hex. Blank lines and
// lines starting with '#' are skipped. Keys absent from the file keep their
// factory defaults.
func LoadReader(r io.Reader) (Settings, error) {
	s := Defaults()

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return Settings{}, fmt.Errorf("line %d: missing '=' separator", lineNum)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := s.apply(key, value); err != nil {
			return Settings{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return Settings{}, fmt.Errorf("failed to read file: %w", err)
	}

	return s, nil
}

// apply sets a single key to its parsed value.
func (s *Settings) apply(key, value string) error {
	v, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex value %q for %s", value, key)
	}

	switch key {
	case KeyColor:
		if v > maxColor {
			return fmt.Errorf("color 0x%X exceeds 24 bits", v)
		}
		s.Color = uint32(v)
	case KeyBrightness:
		if v > 0xFF {
			return fmt.Errorf("brightness 0x%X exceeds 0xFF", v)
		}
		s.Brightness = uint8(v)
	case KeyEffect:
		effect := device.Effect(v)
		if v > 0xFF || !effect.Valid() {
			return fmt.Errorf("unknown effect code 0x%X", v)
		}
		s.Effect = effect
	case KeyDebug:
		s.Debugging = v != 0
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	return nil
}

// Save writes the settings to the given path, replacing any previous
// content. The write goes through a temporary file and rename so a crash
// mid-write never leaves a truncated settings file behind.
func Save(path string, s Settings) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ledsc-settings-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := SaveWriter(tmp, s); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// SaveWriter writes the settings to any io.Writer in the same format Load
// reads.
func SaveWriter(w io.Writer, s Settings) error {
	debug := 0
	if s.Debugging {
		debug = 1
	}

	_, err := fmt.Fprintf(w, "%s=%06X\n%s=%02X\n%s=%X\n%s=%X\n",
		KeyColor, s.Color,
		KeyBrightness, s.Brightness,
		KeyEffect, uint8(s.Effect),
		KeyDebug, debug)
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
