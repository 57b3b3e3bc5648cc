package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/gui"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagGUI   bool
	flagSound bool
	flagCell  float64
)

const (
	guiCols = 80
	guiRows = 30
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Alien Invasion",
	Long: `Start a game in this terminal, or in a window with --gui.

Controls:
  Left/Right, A/D   - Move the ship
  Space             - Fire
  Enter or click    - Press Play
  Ctrl+S            - Save a screenshot (terminal only)
  Q/Ctrl+C          - Quit

Terminals do not report key releases, so the ship keeps moving for a
moment after you let go (input.key_release in the config). The window
frontend tracks keys exactly.

Difficulty options:
  easy   - 5 ships, 5 bullets, slower fleet
  normal - The configured values
  hard   - 2 ships, 2 bullets, faster fleet
  fixed  - Levels never speed up

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --gui --cell 1.5 --sound
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagCell, "cell", 1, "Window scale factor (with --gui)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	out, closeLog, err := openLog()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(out, "invaders")

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	// Score history is best-effort
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		Player:     playerName(),
		KeyRelease: gameCfg.Input.KeyRelease,
	}

	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	game := invaders.New(gameCfg)
	rt := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
	}

	if flagGUI {
		return gui.Run(game, rt, gui.Options{
			Cols:   guiCols,
			Rows:   guiRows,
			Scale:  flagCell,
			Store:  opts.Store,
			Sound:  opts.Sound,
			Logger: opts.Logger,
			Player: opts.Player,
		})
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	return tui.Run(game, rt, opts)
}

func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
