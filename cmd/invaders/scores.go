package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresTUI bool
	flagClear     bool
	flagLimit     int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded games.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --tui
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	game := invaders.New(config.DefaultInvadersConfig())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(game.ID()); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.ID(), game.Title(), width, height)
	}

	scores, err := store.TopScores(game.ID(), flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'invaders play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %10s  %5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %10s  %5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %10s  %5d  %s\n",
			i+1, entry.Player, humanize.Comma(int64(entry.Score)), entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if sum, err := store.Summary(game.ID()); err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %d games, last played %s\n",
			humanize.Comma(int64(sum.HighScore)), sum.GamesCount, humanize.Time(sum.LastPlayed))
	}
	return nil
}
