package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mattress-hop/internal/audio"
	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/core"
	"github.com/vovakirdan/mattress-hop/internal/games/hop"
	"github.com/vovakirdan/mattress-hop/internal/platform/tui"
)

var (
	flagLogFile string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game on the title screen.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Jump
  Enter            - Start
  R or click       - Restart (after game over)
  M                - Mute
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

The game owns the terminal, so logs are only written with --log-file.

Examples:
  mattresshop play
  mattresshop play --seed 7 --log-file hop.log --log-level debug
  mattresshop play --config ./slow-beds.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Running without a subcommand plays, so it accepts the same flags.
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLogOutput returns the writer for the play logger and a function that
// closes it. An empty path discards logs.
func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}

// play runs one interactive session. Deferred cleanup always runs, so the
// caller may exit the process once it returns.
func play() error {
	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
	logger.Info("starting", "seed", seed, "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))

	player := audio.NewPlayer(cfg.Audio, logger)
	if flagMute {
		player.SetMuted(true)
	} else if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
	}
	defer player.Close()

	round := hop.New(cfg, rt, player, eventLog{logger: logger})
	player.PlayTitle()

	if err := tui.Run(round, rt, tui.WithMuter(player), tui.WithLogger(logger)); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exit", "final_score", round.FinalScore())
	return nil
}
