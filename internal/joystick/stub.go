// Package joystick provides the joystick driver for platforms without
// gamepad support. The device never leaves the inactive state.
package joystick

import (
	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/hal"
)

// Stub is an absent joystick
type Stub struct {
	log    slog.Logger
	binder hal.Binder
}

var _ hal.Joystick = (*Stub)(nil)

// New creates a stub joystick. The binder is kept to satisfy the driver
// contract but nothing is ever bound to it.
func New(log slog.Logger, binder hal.Binder) *Stub {
	if log == nil {
		log = slog.Disabled
	}
	return &Stub{log: log, binder: binder}
}

// Init opens no device
func (j *Stub) Init() {
	j.log.Debugf("Joystick input is not supported on this platform")
}

// Shutdown closes no device
func (j *Stub) Shutdown() {}

// Update posts no events
func (j *Stub) Update() {}

// BindVariables registers no settings
func (j *Stub) BindVariables() {}
