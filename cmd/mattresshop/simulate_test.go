package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/core"
	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

func TestScriptFrames(t *testing.T) {
	sc := newScript(4, 2)

	var got []string
	for tick := 1; tick <= 9; tick++ {
		in := sc.frame(tick)
		s := "."
		switch {
		case in.Has(core.ActionJump) && in.Right:
			s = "J>"
		case in.Has(core.ActionJump) && in.Left:
			s = "J<"
		case in.Right:
			s = ">"
		case in.Left:
			s = "<"
		}
		got = append(got, s)
	}

	want := []string{".", ".", ".", "J>", ">", ".", ".", "J<", "<"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
}

func TestSimulateIdleRound(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 7

	res := simulateRound(config.DefaultHopConfig(), rt, newScript(0, 0), 5*time.Second, 16*time.Millisecond)

	if res.GameOver {
		t.Error("standing still for 5s should not end the round")
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if res.Ticks != 313 {
		t.Errorf("ticks = %d, want 313", res.Ticks)
	}
	if res.Events[hop.EventBounce] != 0 || res.Events[hop.EventBedRemoved] != 0 {
		t.Errorf("unexpected events: %v", res.Events)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 99
	cfg := config.DefaultHopConfig()

	a := simulateRound(cfg, rt, newScript(80, 50), time.Minute, 16*time.Millisecond)
	b := simulateRound(cfg, rt, newScript(80, 50), time.Minute, 16*time.Millisecond)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Events[hop.EventBounce] == 0 {
		t.Error("scripted player should have jumped")
	}
}

func TestEventLog(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sink := eventLog{logger: logger}

	sink.HandleEvent(hop.Event{Kind: hop.EventBounce, BedID: 1})
	sink.HandleEvent(hop.Event{Kind: hop.EventBedRemoved, BedID: 3, Score: 20})

	out := buf.String()
	if strings.Contains(out, "bounce") {
		t.Error("bounce should only be logged at debug level")
	}
	if !strings.Contains(out, "bed_removed") || !strings.Contains(out, "bed=3") {
		t.Errorf("missing bed removal in %q", out)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	defer func() { flagLogLevel = old }()

	flagLogLevel = "loud"
	if _, err := newLogger(&bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
