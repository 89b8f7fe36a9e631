package sim

import "sync"

// Event names an inbound request from the UI layer.
type Event uint8

const (
	EventStart Event = iota
	EventStop
	EventReset
	EventPaint
	EventErase
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventReset:
		return "reset"
	case EventPaint:
		return "paint"
	case EventErase:
		return "erase"
	default:
		return "unknown"
	}
}

// WorldPos is a position in world units.
type WorldPos struct {
	X, Y float64
}

// Mailbox holds at most one pending event of each kind. Posting the same kind
// twice before a drain keeps only the latest value. Posting is safe from any
// goroutine; draining belongs to the simulation owner.
type Mailbox struct {
	mu    sync.Mutex
	start bool
	stop  bool
	reset bool
	paint *WorldPos
	erase *WorldPos
}

// Inbox is the set of events captured by one drain.
type Inbox struct {
	Start bool
	Stop  bool
	Reset bool
	Paint *WorldPos
	Erase *WorldPos
}

// Empty reports whether nothing was pending.
func (in Inbox) Empty() bool {
	return !in.Start && !in.Stop && !in.Reset && in.Paint == nil && in.Erase == nil
}

// Post records a control event. Paint and erase need a position; use
// PostPaint and PostErase for those.
func (m *Mailbox) Post(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch e {
	case EventStart:
		m.start = true
	case EventStop:
		m.stop = true
	case EventReset:
		m.reset = true
	}
}

// PostPaint stores the latest paint position.
func (m *Mailbox) PostPaint(wx, wy float64) {
	m.mu.Lock()
	m.paint = &WorldPos{X: wx, Y: wy}
	m.mu.Unlock()
}

// PostErase stores the latest erase position.
func (m *Mailbox) PostErase(wx, wy float64) {
	m.mu.Lock()
	m.erase = &WorldPos{X: wx, Y: wy}
	m.mu.Unlock()
}

// DrainControl takes the pending start, stop and reset flags.
func (m *Mailbox) DrainControl() Inbox {
	m.mu.Lock()
	defer m.mu.Unlock()
	in := Inbox{Start: m.start, Stop: m.stop, Reset: m.reset}
	m.start, m.stop, m.reset = false, false, false
	return in
}

// DrainPointer takes the pending paint and erase positions.
func (m *Mailbox) DrainPointer() Inbox {
	m.mu.Lock()
	defer m.mu.Unlock()
	in := Inbox{Paint: m.paint, Erase: m.erase}
	m.paint, m.erase = nil, nil
	return in
}

// Clear drops everything pending.
func (m *Mailbox) Clear() {
	m.mu.Lock()
	m.start, m.stop, m.reset = false, false, false
	m.paint, m.erase = nil, nil
	m.mu.Unlock()
}
