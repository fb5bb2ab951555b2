package client

import (
	"fmt"

	"github.com/ledsc/go-ledsc/protocol"
)

// DeviceError is returned when the controller acknowledged a command with a
// non-zero status code.
type DeviceError struct {
	// Command is the command the controller rejected
	Command string

	// Code is the status code the controller reported
	Code protocol.Code
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("device rejected %s: %s (%d)", e.Command, e.Code, e.Code)
}

// IsDeviceError checks if an error is a *DeviceError.
func IsDeviceError(err error) bool {
	_, ok := err.(*DeviceError)
	return ok
}
