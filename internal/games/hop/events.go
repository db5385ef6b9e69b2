package hop

// EventKind names a discrete cue raised by the simulation.
type EventKind int

const (
	EventRoundStart     EventKind = iota // A round was (re)initialized
	EventBounce                          // The character jumped
	EventLanded                          // The character landed on a bed
	EventBedRemoved                      // A bed was deactivated and starts fading
	EventBedReactivated                  // An inactive bed came back
	EventGameOver                        // The character fell off the screen
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventBounce:
		return "bounce"
	case EventLanded:
		return "landed"
	case EventBedRemoved:
		return "bed_removed"
	case EventBedReactivated:
		return "bed_reactivated"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for audio, logging or effects.
type Event struct {
	Kind   EventKind
	BedID  BedRef // Bed involved, NoBed when not applicable
	Points int    // Points awarded by a landing
	Score  int    // Score after the event
}

// EventSink consumes simulation events. Sinks must not try to mutate the
// round; they only observe.
type EventSink interface {
	HandleEvent(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// HandleEvent calls f(e).
func (f EventSinkFunc) HandleEvent(e Event) {
	f(e)
}

// Bus fans events out to every subscribed sink. A sink that panics is
// isolated: the panic is recovered and counted, and the remaining sinks still
// receive the event.
type Bus struct {
	sinks    []EventSink
	failures int
}

// NewBus creates a bus with the given sinks. Nil sinks are ignored.
func NewBus(sinks ...EventSink) *Bus {
	b := &Bus{}
	for _, s := range sinks {
		b.Subscribe(s)
	}
	return b
}

// Subscribe adds a sink.
func (b *Bus) Subscribe(s EventSink) {
	if s == nil {
		return
	}
	b.sinks = append(b.sinks, s)
}

// Publish delivers e to every sink in subscription order.
func (b *Bus) Publish(e Event) {
	for _, s := range b.sinks {
		b.deliver(s, e)
	}
}

// Failures returns how many deliveries panicked.
func (b *Bus) Failures() int {
	return b.failures
}

func (b *Bus) deliver(s EventSink, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.failures++
		}
	}()
	s.HandleEvent(e)
}

// Recorder is a sink that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// HandleEvent appends e.
func (r *Recorder) HandleEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given kind.
func (r *Recorder) Last(kind EventKind) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == kind {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
