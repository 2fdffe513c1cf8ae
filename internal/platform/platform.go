// Package platform picks the HAL drivers for the build target. The
// selection is made at compile time by build constraints on the files in
// this package.
package platform

import (
	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/hal"
)

// Set by the build-constrained file for the target
var (
	name        string
	newMusic    func(log slog.Logger) hal.MusicDevice
	newJoystick func(log slog.Logger, b hal.Binder) hal.Joystick
)

// Name returns the platform the drivers were selected for
func Name() string { return name }

// NewMusicDevice returns the CD audio driver for this platform
func NewMusicDevice(log slog.Logger) hal.MusicDevice {
	return newMusic(log)
}

// NewJoystick returns the joystick driver for this platform
func NewJoystick(log slog.Logger, b hal.Binder) hal.Joystick {
	return newJoystick(log, b)
}
