package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/core"
	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

var (
	flagDuration  time.Duration
	flagDT        time.Duration
	flagJumpEvery int
	flagHold      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted headless round",
	Long: `Run one round without a terminal UI and print a summary.

The scripted player jumps every --jump-every ticks and steers for --hold
ticks after each jump, alternating right and left, so it hops between
neighbouring beds. Set --hold 0 to jump in place. Events are logged to
stderr (bounces and landings at debug level).

Examples:
  mattresshop simulate --seed 42
  mattresshop simulate --duration 5m --jump-every 0
  mattresshop simulate --log-level debug --hold 50`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time to run")
	simulateCmd.Flags().DurationVar(&flagDT, "dt", 16*time.Millisecond, "Simulated frame time")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 80, "Ticks between jump attempts (0 = never jump)")
	simulateCmd.Flags().IntVar(&flagHold, "hold", 50, "Ticks to steer after each jump")
}

// script is a deterministic input source for headless runs.
type script struct {
	jumpEvery int
	hold      int
	dir       int
	steering  int
}

func newScript(jumpEvery, hold int) *script {
	return &script{jumpEvery: jumpEvery, hold: hold, dir: 1}
}

// frame returns the input for the given tick.
func (s *script) frame(tick int) core.InputFrame {
	in := core.NewInputFrame()
	if s.jumpEvery > 0 && tick%s.jumpEvery == 0 {
		in.Set(core.ActionJump)
		if s.hold > 0 {
			s.steering = s.hold
		}
	}
	if s.steering > 0 {
		in.Left = s.dir < 0
		in.Right = s.dir > 0
		s.steering--
		if s.steering == 0 {
			s.dir = -s.dir
		}
	}
	return in
}

// summary is the outcome of a headless run.
type summary struct {
	Ticks    int
	Elapsed  time.Duration
	Score    int
	GameOver bool
	Events   map[hop.EventKind]int
}

// simulateRound plays one round with the script until it ends or the
// duration elapses.
func simulateRound(cfg config.HopConfig, rt core.RuntimeConfig, sc *script, duration, dt time.Duration, sinks ...hop.EventSink) summary {
	rec := &hop.Recorder{}
	round := hop.New(cfg, rt, append([]hop.EventSink{rec}, sinks...)...)
	round.Start()

	for round.Elapsed() < duration && round.Phase() == hop.PhaseRunning {
		round.Step(sc.frame(round.Ticks()+1), dt)
	}

	counts := make(map[hop.EventKind]int)
	for _, e := range rec.Events {
		counts[e.Kind]++
	}
	st := round.State()
	return summary{
		Ticks:    round.Ticks(),
		Elapsed:  round.Elapsed(),
		Score:    st.Score,
		GameOver: st.GameOver,
		Events:   counts,
	}
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDT <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --dt must be positive")
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Info("simulating", "seed", rt.Seed, "duration", flagDuration, "dt", flagDT)
	res := simulateRound(cfg, rt, newScript(flagJumpEvery, flagHold), flagDuration, flagDT, eventLog{logger: logger})

	fmt.Printf("Ticks:      %d\n", res.Ticks)
	fmt.Printf("Elapsed:    %v\n", res.Elapsed)
	fmt.Printf("Score:      %d\n", res.Score)
	fmt.Printf("Game over:  %v\n", res.GameOver)
	fmt.Println()
	fmt.Println("Events:")
	for _, k := range []hop.EventKind{
		hop.EventBounce,
		hop.EventLanded,
		hop.EventBedRemoved,
		hop.EventBedReactivated,
		hop.EventGameOver,
	} {
		fmt.Printf("  %-16s %d\n", k.String(), res.Events[k])
	}
}
