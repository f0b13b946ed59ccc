package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bee/internal/platform/tui"
	"github.com/vovakirdan/tui-bee/internal/registry"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

var (
	flagClear bool
	flagTop   int
	flagTable bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, or clear them.

Examples:
  bee scores
  bee scores --top 20
  bee scores --table
  bee scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagTable, "table", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "bee")
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath(), logger)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d scores.\n", n)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		info := registry.GameInfo{ID: game.ID(), Title: game.Title()}
		return tui.RunScoreboard(store, info, width, height)
	}

	scores, err := store.TopScores(gameID, flagTop)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bee play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %s\n", i+1, entry.Player, entry.Score,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Players: %d  Avg: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
	return nil
}
