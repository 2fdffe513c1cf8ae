package input

import (
	"sync"

	"github.com/decred/slog"
)

// Mapper turns front-end touches and key presses into queued Doom key
// events, tracking whether a game is in progress and whether text entry
// is active
type Mapper struct {
	mu        sync.Mutex
	log       slog.Logger
	queue     Queue
	inGame    bool
	textInput bool

	touching bool
	active   Region
}

// NewMapper creates a mapper in the menu state
func NewMapper(log slog.Logger) *Mapper {
	if log == nil {
		log = slog.Disabled
	}
	return &Mapper{log: log}
}

// SetInGame switches the action and fire regions between play and menus
func (m *Mapper) SetInGame(v bool) {
	m.mu.Lock()
	m.inGame = v
	m.mu.Unlock()
}

// SetTextInput switches space and E between play keys and characters
func (m *Mapper) SetTextInput(v bool) {
	m.mu.Lock()
	m.textInput = v
	m.mu.Unlock()
}

// InGame reports the play/menu state
func (m *Mapper) InGame() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inGame
}

// TextInput reports whether text entry is active
func (m *Mapper) TextInput() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.textInput
}

// Touch handles a touch down or drag at (x, y). Moving into a new region
// releases the previous region's key before pressing the new one.
func (m *Mapper) Touch(x, y, w, h float64) Region {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := RegionAt(x, y, w, h)
	if m.touching && r == m.active {
		return r
	}
	if m.touching {
		m.queue.Post(Event{Pressed: false, Key: RegionKey(m.active, m.inGame)})
	}
	m.queue.Post(Event{Pressed: true, Key: RegionKey(r, m.inGame)})
	m.touching = true
	m.active = r
	m.log.Tracef("touch region %v", r)
	return r
}

// TouchEnd releases the key of the active region, if any
func (m *Mapper) TouchEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.touching {
		return
	}
	m.queue.Post(Event{Pressed: false, Key: RegionKey(m.active, m.inGame)})
	m.touching = false
}

// Keyboard handles a HID key change. It returns false for unmapped keys,
// which post nothing.
func (m *Mapper) Keyboard(code KeyCode, pressed bool) (Key, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := KeyFor(code, m.textInput)
	if !ok {
		m.log.Tracef("unmapped key code 0x%02x", uint16(code))
		return 0, false
	}
	m.queue.Post(Event{Pressed: pressed, Key: k})
	return k, true
}

// MacKeyboard handles a macOS virtual key change
func (m *Mapper) MacKeyboard(code MacKeyCode, pressed bool) (Key, bool) {
	k, ok := MacKeyFor(code)
	if !ok {
		return 0, false
	}
	m.queue.Post(Event{Pressed: pressed, Key: k})
	return k, true
}

// Events drains the queued key events, oldest first
func (m *Mapper) Events() []Event {
	return m.queue.Drain()
}

// Pending returns the number of queued key events
func (m *Mapper) Pending() int {
	return m.queue.Len()
}
