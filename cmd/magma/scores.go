package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrichson/time-mission-magma-mayhem/internal/registry"
	"github.com/jrichson/time-mission-magma-mayhem/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the top 10 leaderboard entries for the specified mode.

Examples:
  magma scores magma
  magma scores magma_endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'magma list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Top(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'magma play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-10s  %s\n", "Rank", "Name", "Score", "Level", "Character", "Date")
	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-10s  %s\n", "----", "----", "-----", "-----", "---------", "----")

	for i, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-7d  %-6d  %-10s  %s\n", i+1, e.Name, e.Score, e.Level, e.Character, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
