// invaders is the Alien Invasion arcade shooter for the terminal, a desktop
// window, or SSH.
//
// Usage:
//
//	invaders play            - Play in this terminal (--gui opens a window)
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the score history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/invaders.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a fixed-shooter arcade game. Move your ship along the
bottom of the screen and shoot the alien fleet before it reaches you.

Available commands:
  play     - Play in this terminal or in a window
  serve    - Start SSH server for remote play
  scores   - View the score history

Examples:
  invaders play
  invaders play --difficulty hard --sound
  invaders play --gui --cell 2
  invaders serve --ssh :2222
  invaders scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.GetEnv(config.EnvDBPath, storage.DefaultPath), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig resolves the game config from --config and --difficulty.
// A broken config file found by searching is reported and replaced by defaults.
func loadGameConfig(logger *log.Logger) (config.InvadersConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return config.InvadersConfig{}, fmt.Errorf("load config: %w", err)
		}
		logger.Warn("using default config", "error", err)
	}

	config.ApplyInvadersPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds a logger writing to w. INVADERS_LOG_LEVEL sets the level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(strings.ToLower(config.GetEnv(config.EnvLogLevel, "info"))); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLog returns the --log-file destination, or io.Discard so the
// terminal frontend stays clean.
func openLog() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
