package input

import "sync"

// QueueSize is the capacity of the key event queue
const QueueSize = 16

// Event is a key press or release
type Event struct {
	Pressed bool
	Key     Key
}

// Queue is a fixed-size key event ring. When full, the oldest event is
// overwritten.
type Queue struct {
	mu      sync.Mutex
	events  [QueueSize]Event
	read    int
	n       int
	dropped int
}

// Post appends an event
func (q *Queue) Post(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.n == QueueSize {
		q.read = (q.read + 1) % QueueSize
		q.n--
		q.dropped++
	}
	q.events[(q.read+q.n)%QueueSize] = ev
	q.n++
}

// Pop removes and returns the oldest event
func (q *Queue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.n == 0 {
		return Event{}, false
	}
	ev := q.events[q.read]
	q.read = (q.read + 1) % QueueSize
	q.n--
	return ev, true
}

// Drain removes and returns all queued events, oldest first
func (q *Queue) Drain() []Event {
	var out []Event
	for {
		ev, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}

// Dropped returns how many events were overwritten before being read
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
