package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/config"
	"github.com/famish99/doomhal/internal/cvar"
	"github.com/famish99/doomhal/internal/hal"
	"github.com/famish99/doomhal/internal/input"
)

// Engine-side sound cvars
const (
	CvarMusicVolume = "snd_musicvolume"
	CvarCDMusic     = "snd_cdmusic"
)

var ErrBadTicRate = errors.New("tic rate out of range")

// Engine drives the HAL drivers in the order the game's startup sequence
// and input loop call them
type Engine struct {
	mu     sync.Mutex
	config *config.Config
	log    slog.Logger

	music    hal.MusicDevice
	joystick hal.Joystick
	cvars    *cvar.Registry
	input    *input.Mapper

	// Bound into cvars. Accessed only through the registry.
	musicVolume int
	cdMusic     int

	state  State
	frames int // Total frames run since startup
	events int // Key events consumed by the frame loop
}

// New creates an engine with the drivers supplied. Use the platform
// package to obtain the drivers for the build target.
func New(cfg *config.Config, log slog.Logger, music hal.MusicDevice, joy hal.Joystick, cvars *cvar.Registry) *Engine {
	if log == nil {
		log = slog.Disabled
	}
	e := &Engine{
		config:      cfg,
		log:         log,
		music:       music,
		joystick:    joy,
		cvars:       cvars,
		input:       input.NewMapper(log),
		musicVolume: cfg.CDMusic.Volume,
	}
	if cfg.CDMusic.Enabled {
		e.cdMusic = 1
	}

	cvars.BindInt(CvarMusicVolume, &e.musicVolume)
	cvars.BindInt(CvarCDMusic, &e.cdMusic)

	return e
}

// intVar reads one of the engine's own cvars, which are bound in New
func (e *Engine) intVar(name string) int {
	v, err := e.cvars.Int(name)
	if err != nil {
		e.log.Errorf("Reading %s: %v", name, err)
	}
	return v
}

// Startup initializes the drivers
func (e *Engine) Startup() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning {
		return fmt.Errorf("engine already started")
	}

	cdMusic := e.intVar(CvarCDMusic) != 0
	if cdMusic {
		if err := hal.Check("cd init", e.music.Init()); err != nil {
			// The game carries on without CD music
			e.log.Warnf("CD audio unavailable: %v", err)
			cdMusic = false
			_ = e.cvars.SetInt(CvarCDMusic, 0)
		} else {
			e.music.PrintStartup()
			if err := hal.Check("cd volume", e.music.SetVolume(e.intVar(CvarMusicVolume))); err != nil {
				e.log.Warnf("Failed to set CD volume: %v", err)
			}
		}
	}

	if e.config.Joystick.Enabled {
		e.joystick.Init()
	}
	e.joystick.BindVariables()

	e.state = StateRunning
	e.frames = 0
	e.log.Infof("Engine started (cd music: %v, joystick: %v)", cdMusic, e.config.Joystick.Enabled)
	return nil
}

// ticInterval returns the frame period, rejecting rates a config that
// skipped validation may carry
func (e *Engine) ticInterval() (time.Duration, error) {
	rate := e.config.Engine.TicRate
	if rate <= 0 || rate > config.MaxTicRate {
		return 0, fmt.Errorf("%w: %d", ErrBadTicRate, rate)
	}
	return time.Second / time.Duration(rate), nil
}

// RunFrames runs n frames of the input loop at the configured tic rate.
// Each frame polls the joystick and consumes queued key events. It returns
// the number of frames completed, stopping early if ctx is cancelled.
func (e *Engine) RunFrames(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	if e.State() != StateRunning {
		return 0, fmt.Errorf("engine not started")
	}
	interval, err := e.ticInterval()
	if err != nil {
		return 0, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := 0
	for done < n {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		select {
		case <-ctx.Done():
			return done, ctx.Err()
		case <-ticker.C:
			e.joystick.Update()
			e.consumeEvents()
			e.addFrames(1)
			done++
		}
	}
	e.log.Debugf("Ran %d frames", done)
	return done, nil
}

func (e *Engine) consumeEvents() {
	events := e.input.Events()
	for _, ev := range events {
		e.log.Tracef("key %v pressed=%v", ev.Key, ev.Pressed)
	}
	if len(events) > 0 {
		e.mu.Lock()
		e.events += len(events)
		e.mu.Unlock()
	}
}

func (e *Engine) addFrames(n int) {
	e.mu.Lock()
	e.frames += n
	e.mu.Unlock()
}

// Shutdown stops the music and releases the joystick
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}
	if e.intVar(CvarCDMusic) != 0 {
		if err := hal.Check("cd stop", e.music.Stop()); err != nil {
			e.log.Warnf("Error stopping CD audio: %v", err)
		}
	}
	if e.config.Joystick.Enabled {
		e.joystick.Shutdown()
	}
	e.state = StateStopped
	e.log.Infof("Engine shut down after %d frames", e.frames)
}

// Music returns the CD audio driver
func (e *Engine) Music() hal.MusicDevice { return e.music }

// Joystick returns the joystick driver
func (e *Engine) Joystick() hal.Joystick { return e.joystick }

// Cvars returns the configuration variable registry
func (e *Engine) Cvars() *cvar.Registry { return e.cvars }

// Input returns the key event mapper the front ends post to
func (e *Engine) Input() *input.Mapper { return e.input }

// Frames returns the number of frames run since startup
func (e *Engine) Frames() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// KeyEvents returns the number of key events consumed by the frame loop
func (e *Engine) KeyEvents() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.events
}
