//go:build !darwin

package platform

import (
	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/cdmus"
	"github.com/famish99/doomhal/internal/hal"
	"github.com/famish99/doomhal/internal/joystick"
)

// No native drivers are built for other targets yet, so they run headless
// on the same stubs.
func init() {
	name = "headless"
	newMusic = func(log slog.Logger) hal.MusicDevice { return cdmus.New(log) }
	newJoystick = func(log slog.Logger, b hal.Binder) hal.Joystick { return joystick.New(log, b) }
}
