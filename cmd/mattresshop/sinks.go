package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

// eventLog writes simulation events to a logger. Frequent events go to
// debug, round lifecycle and bed changes to info.
type eventLog struct {
	logger *log.Logger
}

// HandleEvent implements hop.EventSink.
func (l eventLog) HandleEvent(e hop.Event) {
	kv := []any{"kind", e.Kind.String(), "score", e.Score}
	if e.BedID.Valid() {
		kv = append(kv, "bed", int(e.BedID))
	}
	if e.Points > 0 {
		kv = append(kv, "points", e.Points)
	}

	switch e.Kind {
	case hop.EventBounce, hop.EventLanded:
		l.logger.Debug("event", kv...)
	default:
		l.logger.Info("event", kv...)
	}
}
