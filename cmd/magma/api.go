package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrichson/time-mission-magma-mayhem/internal/leaderboard"
	"github.com/jrichson/time-mission-magma-mayhem/internal/registry"
	"github.com/jrichson/time-mission-magma-mayhem/internal/storage"
)

var (
	flagAPIAddr string
	flagAPIGame string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the leaderboard HTTP API",
	Long: `Start an HTTP service exposing the leaderboard.

Endpoints:
  GET  /leaderboard  - Top entries as JSON
  POST /leaderboard  - Submit a score ({"name", "score", "level", "character"})
  GET  /health       - Liveness check

Examples:
  magma api
  magma api --addr :9000
  magma api --game magma_endless --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8787", "HTTP listen address (host:port)")
	apiCmd.Flags().StringVar(&flagAPIGame, "game", "magma", "Mode whose leaderboard to serve")
}

func runAPI(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagAPIGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagAPIGame)
		fmt.Fprintln(os.Stderr, "Run 'magma list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	limits := submitLimits("")[flagAPIGame]

	cfg := leaderboard.ServerConfig{
		Address:  flagAPIAddr,
		DBPath:   flagDBPath,
		GameID:   flagAPIGame,
		MaxScore: limits.MaxScore,
		MaxLevel: limits.MaxLevel,
	}

	server := leaderboard.NewServer(cfg, store)
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
