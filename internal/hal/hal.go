package hal

import "fmt"

// Status is a transport return code. Zero means success.
type Status int

const StatusOK Status = 0

// OK reports whether the status is the success code
func (s Status) OK() bool { return s == StatusOK }

// MusicDevice defines the CD audio transport the engine drives from its
// startup sequence and the sound menu
type MusicDevice interface {
	// Lifecycle
	Init() Status  // Reset the last error and prepare the drive
	PrintStartup() // Startup banner, called after Init

	// Transport control
	Play(track int) Status
	Stop() Status
	Resume() Status
	SetVolume(level int) Status

	// Disc queries
	FirstTrack() int
	LastTrack() int
	TrackLength(track int) int

	// Err returns the last transport error code
	Err() Status
}

// Joystick defines the joystick lifecycle the engine drives each frame
type Joystick interface {
	Init()
	Shutdown()
	Update()        // Poll the device and post input events
	BindVariables() // Register joystick settings with the engine
}

// Binder receives configuration variables a device wants the engine to
// persist and expose on the console
type Binder interface {
	BindInt(name string, v *int)
	BindString(name string, v *string)
}

// StatusError reports a non-zero status returned by a transport operation
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: transport status %d", e.Op, int(e.Status))
}

// Check converts a transport status into an error, nil on success
func Check(op string, s Status) error {
	if s.OK() {
		return nil
	}
	return &StatusError{Op: op, Status: s}
}
