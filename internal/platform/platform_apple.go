//go:build darwin

package platform

import (
	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/cdmus"
	"github.com/famish99/doomhal/internal/hal"
	"github.com/famish99/doomhal/internal/joystick"
)

// macOS and iOS (GOOS=ios also satisfies the darwin constraint) have no CD
// drive or joystick support.
func init() {
	name = "apple"
	newMusic = func(log slog.Logger) hal.MusicDevice { return cdmus.New(log) }
	newJoystick = func(log slog.Logger, b hal.Binder) hal.Joystick { return joystick.New(log, b) }
}
