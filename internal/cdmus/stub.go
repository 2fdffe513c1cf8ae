// Package cdmus provides the CD audio transport for platforms without an
// optical drive. Every operation succeeds and the drive reports an empty disc.
package cdmus

import (
	"sync/atomic"

	"github.com/decred/slog"

	"github.com/famish99/doomhal/internal/hal"
)

// Stub is a silent, trackless CD drive
type Stub struct {
	log slog.Logger

	// Last transport error. Only Init writes it and it is always StatusOK.
	lastErr atomic.Int32
}

var _ hal.MusicDevice = (*Stub)(nil)

// New creates a stub drive. A nil logger is replaced with slog.Disabled.
func New(log slog.Logger) *Stub {
	if log == nil {
		log = slog.Disabled
	}
	return &Stub{log: log}
}

// Init resets the last error
func (s *Stub) Init() hal.Status {
	s.lastErr.Store(int32(hal.StatusOK))
	s.log.Debugf("CD audio is not supported on this platform, using silent drive")
	return hal.StatusOK
}

// PrintStartup has nothing to report
func (s *Stub) PrintStartup() {}

// Play accepts any track number and produces no audio
func (s *Stub) Play(track int) hal.Status {
	s.log.Tracef("play track %d ignored", track)
	return hal.StatusOK
}

// Stop is a no-op
func (s *Stub) Stop() hal.Status { return hal.StatusOK }

// Resume is a no-op
func (s *Stub) Resume() hal.Status { return hal.StatusOK }

// SetVolume accepts any level unvalidated
func (s *Stub) SetVolume(level int) hal.Status {
	s.log.Tracef("volume %d ignored", level)
	return hal.StatusOK
}

// FirstTrack is always track 0
func (s *Stub) FirstTrack() int { return 0 }

// LastTrack equals FirstTrack: the disc has no tracks
func (s *Stub) LastTrack() int { return 0 }

// TrackLength is zero for every track
func (s *Stub) TrackLength(track int) int { return 0 }

// Err returns the last transport error code
func (s *Stub) Err() hal.Status {
	return hal.Status(s.lastErr.Load())
}
